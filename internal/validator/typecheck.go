package validator

import (
	"strings"

	"envcheck/internal/schema"
)

// ValidateType reports whether value satisfies kind. Unknown kinds always
// pass: a type name the schema does not know is treated as unconstrained
// rather than as an error.
func ValidateType(value string, kind schema.Kind) bool {
	switch kind {
	case schema.KindString:
		return true
	case schema.KindInt:
		return isInt(value)
	case schema.KindBool:
		return isBool(value)
	}
	return true
}

// isInt accepts an optional leading '-' followed by one or more decimal
// digits. Arbitrarily long values stay valid; '+', '_', decimal points
// and exponent notation do not.
func isInt(value string) bool {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// isBool accepts the common truthy and falsy spellings, case-insensitively.
func isBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "false", "1", "0", "yes", "no":
		return true
	}
	return false
}
