package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"envcheck/internal/envfile"
	"envcheck/internal/launcher"
	"envcheck/internal/report"
)

var runSchemaPath string

var runCmd = &cobra.Command{
	Use:   "run ENV_FILE COMMAND [ARGS...]",
	Short: "Validate an env file, then exec a command with its variables",
	Long: `Run validates ENV_FILE exactly like check and, if validation passes,
replaces the envcheck process with COMMAND. The command inherits the
current environment with the env file's variables layered on top, the
file winning on conflicts.

Exit codes follow shell conventions: 127 if COMMAND is not found, 126 if
it is not executable, 1 for validation or input failures. On success the
exit code is whatever COMMAND exits with.`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		opts := runOptions{
			schemaPath: runSchemaPath,
			profile:    colorProfile(),
			logger:     newLogger(),
		}
		if code := runRun(args[0], args[1], args[2:], opts, os.Stderr); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	runCmd.Flags().StringVarP(&runSchemaPath, "schema", "s", "", "path to the YAML schema file")
	runCmd.MarkFlagRequired("schema")
	// Flags after COMMAND belong to the target command, not to envcheck.
	runCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(runCmd)
}

// runOptions carries the flag values for one run invocation.
type runOptions struct {
	schemaPath string
	profile    termenv.Profile
	logger     *slog.Logger
}

// execFn is swapped in tests; the real launcher.Exec would replace the
// test process.
var execFn = launcher.Exec

// runRun validates and then execs, returning an exit code only on failure.
// All output goes to stderr: stdout belongs to the target command.
func runRun(envPath, target string, args []string, opts runOptions, stderr io.Writer) int {
	in, code := loadAndValidate(envPath, opts.schemaPath, opts.logger, stderr)
	if code != 0 {
		return code
	}

	if !in.result.Valid {
		rep := report.New(envPath, opts.schemaPath, in.result, in.rules.Len())
		fmt.Fprint(stderr, report.FormatCLI(rep, opts.profile))
		return 1
	}

	environ := envfile.Merge(os.Environ(), in.vars)
	opts.logger.Debug("validation passed, executing", "command", target, "args", len(args))

	if err := execFn(target, args, environ); err != nil {
		switch {
		case launcher.IsNotFound(err):
			fmt.Fprintf(stderr, "Error: command not found: %s\n", target)
			return 127
		case launcher.IsPermissionDenied(err):
			fmt.Fprintf(stderr, "Error: permission denied: %s\n", target)
			return 126
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Not reached with the real exec: the process image was replaced.
	return 0
}
