package mapping

import (
	"maps"

	"workday-mapper/internal/pathresolve"
)

// Session is the persisted state of one mapping exercise.
type Session struct {
	Service           string                     `json:"service" yaml:"service"`
	Mappings          []FieldMapping             `json:"mappings" yaml:"mappings"`
	ChoiceSelections  map[string]string          `json:"choiceSelections,omitempty" yaml:"choiceSelections,omitempty"`
	ChoiceFieldValues map[string]string          `json:"choiceFieldValues,omitempty" yaml:"choiceFieldValues,omitempty"`
	SampleRow         map[string]any             `json:"sampleRow,omitempty" yaml:"sampleRow,omitempty"`
	SmartPaths        []pathresolve.SmartMapping `json:"smartPaths,omitempty" yaml:"smartPaths,omitempty"`
}

// Set returns the mappings as a deduplicated set.
func (s *Session) Set() *Set {
	return NewSet(s.Mappings...)
}

// SetMappings replaces the stored mappings with the contents of set.
func (s *Session) SetMappings(set *Set) {
	s.Mappings = set.All()
}

// SampleWithPayload returns the sample row extended with the values the
// smart paths resolve in payload, keyed by display name. Unresolved paths
// are left out; the stored sample row is not modified.
func (s *Session) SampleWithPayload(payload any, r *pathresolve.Resolver) map[string]any {
	row := make(map[string]any, len(s.SampleRow)+len(s.SmartPaths))
	maps.Copy(row, s.SampleRow)

	if r == nil {
		r = pathresolve.New()
	}

	for _, sp := range s.SmartPaths {
		if v, ok := r.Apply(payload, sp); ok {
			row[sp.DisplayName] = v
		}
	}

	return row
}
