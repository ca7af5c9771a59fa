package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"envcheck/internal/envfile"
	"envcheck/internal/validator"
)

var (
	initOutPath string
	initForce   bool
)

var initCmd = &cobra.Command{
	Use:   "init ENV_FILE",
	Short: "Generate a starter schema from an existing env file",
	Long: `Init parses ENV_FILE and derives a schema from it: every variable is
marked required, and the type is inferred from its current value (int,
then bool, falling back to string). The schema is printed to stdout, or
written to --out. Review the result; inference only sees one value per
variable.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if code := runInit(args[0], initOutPath, initForce, os.Stdout, os.Stderr); code != 0 {
			os.Exit(code)
		}
	},
}

func init() {
	initCmd.Flags().StringVarP(&initOutPath, "out", "o", "", "write the schema to this path instead of stdout")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing schema file")
	rootCmd.AddCommand(initCmd)
}

// runInit generates a starter schema and returns the process exit code.
func runInit(envPath, outPath string, force bool, stdout, stderr io.Writer) int {
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		fmt.Fprintf(stderr, "Error: %s not found\n", envPath)
		return 1
	}

	vars, err := envfile.ParseFile(envPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	out, err := validator.Infer(vars).ToYAML()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to serialize schema: %v\n", err)
		return 1
	}

	if outPath == "" {
		fmt.Fprint(stdout, string(out))
		return 0
	}

	if !force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(stderr, "Error: %s already exists (use --force to overwrite)\n", outPath)
			return 1
		}
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		fmt.Fprintf(stderr, "Error: failed to write schema to %s: %v\n", outPath, err)
		return 1
	}

	fmt.Fprintf(stdout, "Wrote schema for %d variable(s) to %s\n", len(vars), outPath)
	return 0
}
