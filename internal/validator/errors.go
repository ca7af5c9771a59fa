package validator

import "fmt"

// FormatError formats a ValidationError into a human-readable message.
func FormatError(err ValidationError) string {
	if err.Missing {
		return fmt.Sprintf("Missing required variable: %s", err.Name)
	}
	return fmt.Sprintf("%s: expected %s, got '%s'", err.Name, err.Kind, err.Value)
}

// FormatErrors formats all errors of a result, preserving their order.
func FormatErrors(result ValidationResult) []string {
	messages := make([]string, len(result.Errors))
	for i, err := range result.Errors {
		messages[i] = FormatError(err)
	}
	return messages
}
