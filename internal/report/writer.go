package report

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteFile writes the JSON form of the report to path, creating parent
// directories if needed.
func WriteFile(rep Report, path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
