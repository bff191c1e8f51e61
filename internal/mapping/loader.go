package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadFile loads a session file; .json files are decoded as JSON, others as YAML.
func LoadFile(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}

	if isJSON(path) {
		return ParseJSON(data)
	}

	return Parse(data)
}

// Parse parses YAML data into a Session.
func Parse(data []byte) (*Session, error) {
	var s Session

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session YAML: %w", err)
	}

	if err := applyDefaults(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// ParseJSON parses JSON data into a Session.
func ParseJSON(data []byte) (*Session, error) {
	var s Session

	err := json.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session JSON: %w", err)
	}

	if err := applyDefaults(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

// applyDefaults fills optional values and rejects unknown source types.
func applyDefaults(s *Session) error {
	for i := range s.Mappings {
		m := &s.Mappings[i]
		if m.SourceType == "" {
			m.SourceType = SourceUnmapped
		}

		if !m.SourceType.IsValid() {
			return fmt.Errorf("mapping %q: unknown source type %q", m.TargetField, m.SourceType)
		}

		if m.Transformation == "" {
			m.Transformation = TransformNone
		}
	}

	return nil
}

// Marshal serializes a Session to YAML.
func Marshal(s *Session) ([]byte, error) {
	return yaml.Marshal(s)
}

// MarshalJSON serializes a Session to indented JSON.
func MarshalJSON(s *Session) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// WriteFile writes a Session to the given path in the format its extension names.
func WriteFile(s *Session, path string) error {
	var (
		data []byte
		err  error
	)

	if isJSON(path) {
		data, err = MarshalJSON(s)
	} else {
		data, err = Marshal(s)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", path, err)
	}

	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
