// Package main provides the CLI entrypoint for object-printer.
//
// object-printer reads a JSON or YAML document and prints it as indented
// text, optionally applying the rules of a YAML printing profile:
//
//	object-printer print order.json --profile rules.yaml
//	cat order.yaml | object-printer print --input-format yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
