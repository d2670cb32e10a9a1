package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	// Version of the object-printer CLI.
	Version = "0.3.0"

	envPrefix = "object_printer"

	defaultLogMaxSize    = 10 // megabytes
	defaultLogMaxBackups = 3
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "object-printer",
		Short: "print documents as indented text",
		Long: fmt.Sprintf(`object-printer (v%s)

Prints JSON and YAML documents as human-readable, tab-indented text.
Flags can also be set through environment variables named
OBJECT_PRINTER_<FLAG> (e.g. OBJECT_PRINTER_LOG_LEVEL=debug).`, Version),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initConfig(v)
			return v.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-file", "", "also write logs to this file, rotated by size")

	root.AddCommand(newPrintCmd(v), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of object-printer",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "object-printer v%s\n", Version)
		},
	}
}

// initConfig loads .env files and environment variables.
func initConfig(v *viper.Viper) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// newLogger writes human-readable logs of at least the given level to w and,
// when file is set, to a size-rotated log file. The returned function
// flushes and closes the outputs.
func newLogger(level, file string, w io.Writer) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	outputs := []zapcore.WriteSyncer{zapcore.AddSync(w)}

	var rotated *lumberjack.Logger
	if file != "" {
		rotated = &lumberjack.Logger{
			Filename:   file,
			MaxSize:    defaultLogMaxSize,
			MaxBackups: defaultLogMaxBackups,
			LocalTime:  true,
		}
		outputs = append(outputs, zapcore.AddSync(rotated))
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zap.CombineWriteSyncers(outputs...),
		zap.NewAtomicLevelAt(lvl),
	)

	logger := zap.New(core)

	return logger, func() {
		_ = logger.Sync()

		if rotated != nil {
			_ = rotated.Close()
		}
	}, nil
}
