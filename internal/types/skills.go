package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SkillSet is an ordered list of skill categories. It marshals to and from a
// JSON object while preserving the key order of the source document, because
// render order must follow input order and Go maps do not keep it.
type SkillSet []SkillCategory

// SkillCategory pairs a category label with its comma-joined skill string.
type SkillCategory struct {
	Category string
	Skills   string
}

// UnmarshalJSON decodes a JSON object into the slice in document order.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("skills: %w", err)
	}
	if tok == nil {
		// JSON null
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	var out SkillSet
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("skills: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected object key, got %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("skills %q: expected string value: %w", key, err)
		}
		out = append(out, SkillCategory{Category: key, Skills: value})
	}

	// consume the closing brace
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("skills: %w", err)
	}

	*s = out
	return nil
}

// MarshalJSON encodes the slice back to a JSON object in slice order.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category.Category)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(category.Skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
