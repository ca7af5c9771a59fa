// Package validator checks parsed env vars against a schema and formats
// the resulting error messages.
package validator

import (
	"sort"

	"envcheck/internal/envfile"
	"envcheck/internal/schema"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Name    string      // variable name from the schema
	Kind    schema.Kind // expected type, empty for missing-variable errors
	Value   string      // the offending value, empty for missing-variable errors
	Missing bool        // true when a required variable is absent
}

// ValidationResult contains all validation outcomes for one run.
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Validate checks vars against every rule in the schema, in declaration
// order. It collects all errors rather than stopping at the first one.
// A variable that is present but empty counts as present. Variables in
// vars that have no schema rule are never reported: the schema is a list
// of checks, not a closed set of allowed names.
func Validate(vars envfile.Vars, s schema.Schema) ValidationResult {
	var errors []ValidationError

	for _, name := range s.Names {
		rule := s.Rules[name]
		value, present := vars[name]

		if !present {
			if rule.Required {
				errors = append(errors, ValidationError{Name: name, Missing: true})
			}
			continue
		}

		if !ValidateType(value, rule.Type) {
			errors = append(errors, ValidationError{
				Name:  name,
				Kind:  rule.Type,
				Value: value,
			})
		}
	}

	return ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

// Unchecked returns the variable names present in vars that no schema rule
// covers, sorted. It is advisory output for verbose mode and never part of
// a ValidationResult.
func Unchecked(vars envfile.Vars, s schema.Schema) []string {
	var names []string
	for name := range vars {
		if _, ok := s.Rules[name]; !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
