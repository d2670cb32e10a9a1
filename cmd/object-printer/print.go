package main

import (
	"io"
	"os"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"object-printer/printing"
	"object-printer/profile"
)

// documentTypes are the container types produced by the decoders; profiles
// may refer to them by name, e.g. "map[string]interface {}".
var documentTypes = []reflect.Type{
	reflect.TypeFor[map[string]any](),
	reflect.TypeFor[[]any](),
}

func newPrintCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print [file]",
		Short: "Print a JSON or YAML document",
		Long: `Print a JSON or YAML document as indented text. Without a file, or
with "-", the document is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, v, args)
		},
	}

	cmd.Flags().String("profile", "", "YAML printing profile to apply")
	cmd.Flags().String("input-format", formatAuto, "input format (auto, json, yaml)")

	return cmd
}

func runPrint(cmd *cobra.Command, v *viper.Viper, args []string) error {
	logger, closeLog, err := newLogger(v.GetString("log-level"), v.GetString("log-file"), cmd.ErrOrStderr())
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}

	defer closeLog()

	path := ""
	if len(args) == 1 && args[0] != "-" {
		path = args[0]
	}

	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	format, err := detectFormat(v.GetString("input-format"), path)
	if err != nil {
		return err
	}

	doc, err := decode(data, format)
	if err != nil {
		return err
	}

	cfg := printing.For[any]().WithLogger(logger)

	if profilePath := v.GetString("profile"); profilePath != "" {
		f, err := profile.LoadFile(profilePath)
		if err != nil {
			return err
		}

		if err := profile.Apply(cfg, f, documentTypes...); err != nil {
			return err
		}

		logger.Debug("profile applied", zap.String("path", profilePath))
	}

	printer, err := cfg.Build()
	if err != nil {
		return err
	}

	for _, w := range cfg.Diagnostics().Warnings {
		logger.Warn(w.Message, zap.String("code", w.Code), zap.String("target", w.Target))
	}

	logger.Debug("printing document", zap.String("format", format), zap.Int("bytes", len(data)))

	_, err = io.WriteString(cmd.OutOrStdout(), printer.PrintToString(doc))

	return err
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, errors.Wrap(err, "failed to read standard input")
	}

	data, err := os.ReadFile(path)

	return data, errors.Wrapf(err, "failed to read %s", path)
}
