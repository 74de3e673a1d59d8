package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andyballingall/fmtcheck/internal/config"
	"github.com/andyballingall/fmtcheck/internal/formatter"
	"github.com/andyballingall/fmtcheck/internal/fs"
	"github.com/andyballingall/fmtcheck/internal/report"
	"github.com/andyballingall/fmtcheck/internal/validator"
)

// Version is the current version of fmtcheck, set at build time.
var Version = "dev"

var LongDescription = `
fmtcheck runs clang-format against a single file without modifying it and
reports every line the formatter would change:

  <file>:<line>: error: format is not conforming to the current style

It exits with status 0 only when the formatter proposes no replacement.

Optional settings are read from the nearest ` + config.FileName + ` above the input
file, or from the file named by ` + ConfigEnvVar + `.
Set ` + LogEnvVar + ` to write a structured log and ` + DebugEnvVar + `=1 to
enable debug logging on stderr.
`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyChecker, ll *slog.LevelVar, stderr io.Writer, env fs.EnvProvider) *cobra.Command {
	var inputPath pathValue
	var formatterPath pathValue

	rootCmd := &cobra.Command{
		Use:           "fmtcheck -i <file> -f <clang-format>",
		Short:         "Check that a source file conforms to its clang-format style",
		Long:          LongDescription,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := inputPath.String()
			if _, err := os.Stat(input); err != nil {
				return &MissingInputError{Path: input, Wrapped: err}
			}

			// Skip if already initialised (e.g., in tests)
			if !lazy.HasInner() {
				checker, err := newCLIChecker(cmd.OutOrStdout(), stderr, ll, env, input, formatterPath.String())
				if err != nil {
					return err
				}
				lazy.SetInner(checker)
			}

			return lazy.CheckFile(cmd.Context(), input)
		},
	}

	rootCmd.Flags().VarP(&inputPath, "input", "i", "file to check")
	rootCmd.Flags().VarP(&formatterPath, "formatter", "f", "clang-format binary")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("formatter")

	return rootCmd
}

func newCLIChecker(
	stdout, stderr io.Writer,
	ll *slog.LevelVar,
	env fs.EnvProvider,
	input, binary string,
) (*CLIChecker, error) {
	// 1. Setup Logging
	if debug, _ := strconv.ParseBool(env.Get(DebugEnvVar)); debug {
		ll.Set(slog.LevelDebug)
	}
	logger, closer, err := setupLogger(stderr, ll, env.Get(LogEnvVar))
	if err != nil {
		logger.Warn("logging to file disabled", "error", err)
	}

	// 2. Build Dependencies
	cfg, err := loadConfig(env, input)
	if err != nil {
		closeQuietly(closer)
		return nil, err
	}
	logger.Debug("configuration loaded", "path", cfg.Path, "style", cfg.Style, "output", cfg.Output)

	reporter, err := report.New(string(cfg.Output), cfg.UseColour())
	if err != nil {
		closeQuietly(closer)
		return nil, err
	}
	f := formatter.NewCLIFormatter(logger, binary, cfg.Style, cfg.ExtraArgs)

	return NewCLIChecker(logger, f, reporter, stdout, closer), nil
}

// loadConfig reads the file named by ConfigEnvVar, or else the nearest
// config.FileName above the input file. Without either, defaults apply.
func loadConfig(env fs.EnvProvider, input string) (*config.Config, error) {
	path := env.Get(ConfigEnvVar)
	if path == "" {
		found, err := fs.FindUp(filepath.Dir(input), config.FileName)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return config.Default(), nil
		}
		path = found
	}
	return config.New(path, validator.NewSanthoshCompiler())
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
