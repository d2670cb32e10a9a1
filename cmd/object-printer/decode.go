package main

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// detectFormat picks the input format from the file extension when format
// is "auto". Standard input defaults to JSON.
func detectFormat(format, path string) (string, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case formatAuto, "":
	default:
		return "", errors.Newf("invalid input format %q (auto, json, yaml)", format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatJSON, nil
	}
}

// decode parses a document into maps, slices and scalars.
func decode(data []byte, format string) (any, error) {
	var doc any

	switch format {
	case formatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse JSON input")
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "failed to parse YAML input")
		}
	default:
		return nil, errors.Newf("unsupported input format %q", format)
	}

	return doc, nil
}
