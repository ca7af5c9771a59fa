package validator

import (
	"sort"

	"envcheck/internal/envfile"
	"envcheck/internal/schema"
)

// InferKind returns the narrowest kind the value satisfies: int, then bool,
// falling back to string. "1" and "0" are both, so int wins.
func InferKind(value string) schema.Kind {
	switch {
	case isInt(value):
		return schema.KindInt
	case isBool(value):
		return schema.KindBool
	}
	return schema.KindString
}

// Infer builds a starter schema from parsed env vars: every variable is
// marked required and typed as the kind its current value satisfies.
// Names are sorted so generated schemas are deterministic.
func Infer(vars envfile.Vars) schema.Schema {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	s := schema.Schema{Rules: make(map[string]schema.Rule, len(vars))}
	for _, name := range names {
		s.Names = append(s.Names, name)
		s.Rules[name] = schema.Rule{
			Required: true,
			Type:     InferKind(vars[name]),
		}
	}
	return s
}
