// Package profile provides loading of CV profile records from JSON files.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-generator/internal/types"
)

// Load reads and decodes a profile record from a JSON file.
// A missing file is reported as *NotFoundError so callers can attach usage
// hints; a decode failure is reported as *ParseError.
func Load(path string) (*types.ProfileRecord, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: path}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var rec types.ProfileRecord
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	return &rec, nil
}
