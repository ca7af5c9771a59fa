package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"envcheck/internal/envfile"
	"envcheck/internal/report"
	"envcheck/internal/schema"
	"envcheck/internal/validator"
)

var (
	checkSchemaPath string
	checkJSON       bool
	checkCI         bool
	checkReportFile string
)

var checkCmd = &cobra.Command{
	Use:   "check ENV_FILE",
	Short: "Validate an env file against a schema",
	Long: `Check parses ENV_FILE and the YAML schema, then validates every schema
rule against the parsed variables. All violations are reported at once,
in the order the schema declares them.

Exit code 0 means the file passed; 1 means it failed or an input could
not be read.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := checkOptions{
			schemaPath: checkSchemaPath,
			jsonOut:    checkJSON,
			ciOut:      checkCI,
			reportFile: checkReportFile,
			profile:    colorProfile(),
			logger:     newLogger(),
		}
		if code := runCheck(args[0], opts, os.Stdout, os.Stderr); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkSchemaPath, "schema", "s", "", "path to the YAML schema file")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print a JSON report instead of text")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "print failures as GitHub Actions annotations")
	checkCmd.Flags().StringVar(&checkReportFile, "report-file", "", "also write the JSON report to this path")
	checkCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(checkCmd)
}

// checkOptions carries the flag values for one check invocation.
type checkOptions struct {
	schemaPath string
	jsonOut    bool
	ciOut      bool
	reportFile string
	profile    termenv.Profile
	logger     *slog.Logger
}

// checkedInput is the outcome of the shared load-and-validate steps.
type checkedInput struct {
	vars   envfile.Vars
	rules  schema.Schema
	result validator.ValidationResult
}

// loadAndValidate runs the steps check and run share: precondition checks,
// parsing both inputs and validating. Precondition and parse failures are
// printed to stderr here and signalled by a nonzero exit code; validation
// errors are returned for the caller to present.
func loadAndValidate(envPath, schemaPath string, logger *slog.Logger, stderr io.Writer) (checkedInput, int) {
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Error: %s not found\n", envPath)
		return checkedInput{}, 1
	}
	if _, err := os.Stat(schemaPath); os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Error: %s not found\n", schemaPath)
		return checkedInput{}, 1
	}

	vars, err := envfile.ParseFile(envPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return checkedInput{}, 1
	}

	rules, err := schema.Load(schemaPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return checkedInput{}, 1
	}

	logger.Debug("parsed inputs", "vars", len(vars), "rules", rules.Len())
	if unchecked := validator.Unchecked(vars, rules); len(unchecked) > 0 {
		logger.Debug("variables not covered by schema", "names", strings.Join(unchecked, ","))
	}

	return checkedInput{
		vars:   vars,
		rules:  rules,
		result: validator.Validate(vars, rules),
	}, 0
}

// runCheck performs the full check flow and returns the process exit code.
// Success output goes to stdout; failures and errors go to stderr. JSON
// output always goes to stdout so it can be piped regardless of outcome.
func runCheck(envPath string, opts checkOptions, stdout, stderr io.Writer) int {
	in, code := loadAndValidate(envPath, opts.schemaPath, opts.logger, stderr)
	if code != 0 {
		return code
	}

	rep := report.New(envPath, opts.schemaPath, in.result, in.rules.Len())

	if opts.reportFile != "" {
		if err := report.WriteFile(rep, opts.reportFile); err != nil {
			fmt.Fprintf(stderr, "Error: failed to write report to %s: %v\n", opts.reportFile, err)
			return 1
		}
		opts.logger.Debug("report written", "path", opts.reportFile)
	}

	switch {
	case opts.jsonOut:
		out, err := report.FormatJSON(rep)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to serialize report: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, out)
	case rep.Valid:
		fmt.Fprint(stdout, report.FormatCLI(rep, opts.profile))
	case opts.ciOut:
		fmt.Fprint(stderr, report.FormatCI(rep))
	default:
		fmt.Fprint(stderr, report.FormatCLI(rep, opts.profile))
	}

	if !rep.Valid {
		return 1
	}
	return 0
}
