package main

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"envcheck/internal/logging"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "envcheck",
	Short: "Validate .env files against a YAML schema",
	Long: `envcheck reads a .env-style file and a YAML schema declaring which
variables are required and what primitive type each value must satisfy,
then reports every violation in a single pass.`,
	SilenceUsage: true,
}

// Execute runs the root command. Flag and argument errors are printed by
// cobra itself and exit nonzero; subcommands handle their own exit codes.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// newLogger builds the per-invocation logger honoring --verbose.
// Diagnostics go to stderr, never stdout.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(os.Stderr, level)
}

// colorProfile picks the terminal color profile, honoring --no-color and
// the NO_COLOR convention.
func colorProfile() termenv.Profile {
	if noColor || termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
