// Package envfile parses .env-style files into a name/value mapping.
//
// The accepted format is deliberately small: one KEY=VALUE assignment per
// line, blank lines and #-comment lines skipped, values optionally wrapped
// in single or double quotes. There is no export prefix, no interpolation
// and no multiline values.
package envfile

import (
	"fmt"
	"os"
	"strings"
)

// Vars maps variable names to their raw string values.
type Vars map[string]string

// ParseError reports a line that is neither blank, a comment, nor a
// KEY=VALUE assignment.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, whitespace-trimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid syntax at line %d: %s", e.Line, e.Text)
}

// Parse parses env file content into a Vars mapping.
//
// Each line is whitespace-trimmed before inspection. The value is
// everything after the first '=', whitespace-trimmed and then stripped of
// leading and trailing quote characters. The quote strip is a plain
// character trim from both ends: unmatched quotes are removed too, and a
// quoted value keeps its inner whitespace. Later assignments to the same
// key overwrite earlier ones.
func Parse(content string) (Vars, error) {
	vars := make(Vars)

	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, &ParseError{Line: i + 1, Text: line}
		}

		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		vars[key] = value
	}

	return vars, nil
}

// ParseFile reads the file at path and parses it.
func ParseFile(path string) (Vars, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(content))
}
