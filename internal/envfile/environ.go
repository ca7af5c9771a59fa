package envfile

import (
	"sort"
	"strings"
)

// ParseEnviron converts a process environment in the form returned by
// os.Environ into a Vars mapping. Entries without '=' are skipped and
// values are kept verbatim, with no quote stripping.
func ParseEnviron(environ []string) Vars {
	vars := make(Vars, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		vars[key] = value
	}
	return vars
}

// Merge overlays vars onto an existing environment slice. Entries whose
// name is overridden by vars are dropped, then overlay entries are appended
// in sorted name order so the result is deterministic.
func Merge(environ []string, vars Vars) []string {
	merged := make([]string, 0, len(environ)+len(vars))
	for _, entry := range environ {
		if name, _, ok := strings.Cut(entry, "="); ok {
			if _, overridden := vars[name]; overridden {
				continue
			}
		}
		merged = append(merged, entry)
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		merged = append(merged, name+"="+vars[name])
	}
	return merged
}
