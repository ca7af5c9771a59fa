// Package report renders the outcome of a validation run for terminals,
// CI logs and JSON consumers.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"envcheck/internal/validator"
)

// Error is the serialized view of a single validation error.
type Error struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Value   string `json:"value,omitempty"`
	Missing bool   `json:"missing,omitempty"`
	Message string `json:"message"`
}

// Report is the serialized view of one validation run.
type Report struct {
	Valid      bool    `json:"valid"`
	EnvFile    string  `json:"envFile"`
	SchemaFile string  `json:"schemaFile"`
	Checked    int     `json:"checked"`
	Errors     []Error `json:"errors"`
}

// New builds a Report from a validation result. checked is the number of
// schema rules that were evaluated.
func New(envFile, schemaFile string, result validator.ValidationResult, checked int) Report {
	rep := Report{
		Valid:      result.Valid,
		EnvFile:    envFile,
		SchemaFile: schemaFile,
		Checked:    checked,
		Errors:     make([]Error, 0, len(result.Errors)),
	}

	for _, err := range result.Errors {
		rep.Errors = append(rep.Errors, Error{
			Name:    err.Name,
			Type:    string(err.Kind),
			Value:   err.Value,
			Missing: err.Missing,
			Message: validator.FormatError(err),
		})
	}

	return rep
}

// FormatCLI renders the report for a terminal. The profile controls
// coloring; pass termenv.Ascii for plain text.
func FormatCLI(rep Report, profile termenv.Profile) string {
	if rep.Valid {
		passed := termenv.String("✓ Validation passed").Foreground(profile.Color("2"))
		return passed.String() + "\n"
	}

	var sb strings.Builder
	failed := termenv.String("Validation failed:").Foreground(profile.Color("1"))
	sb.WriteString(failed.String())
	sb.WriteByte('\n')
	for _, err := range rep.Errors {
		sb.WriteString("  • ")
		sb.WriteString(err.Message)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatCI renders the report as GitHub Actions workflow commands, one
// ::error annotation per validation error, followed by a summary line.
// A valid report renders as empty output.
func FormatCI(rep Report) string {
	if rep.Valid {
		return ""
	}

	var sb strings.Builder
	for _, err := range rep.Errors {
		fmt.Fprintf(&sb, "::error file=%s::%s\n", rep.EnvFile, err.Message)
	}
	fmt.Fprintf(&sb, "\n❌ Validation failed: %d error(s)\n", len(rep.Errors))
	return sb.String()
}

// FormatJSON renders the report as indented JSON.
func FormatJSON(rep Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
