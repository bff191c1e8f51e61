package mapping

import (
	"fmt"
	"slices"

	"workday-mapper/internal/common"
)

// SourceType is where a mapped value comes from.
type SourceType string

const (
	SourceFileColumn      SourceType = "file_column"
	SourceGlobalAttribute SourceType = "global_attribute"
	SourceHardcoded       SourceType = "hardcoded"
	SourceDynamicFunction SourceType = "dynamic_function"
	SourceUnmapped        SourceType = "unmapped"
)

var sourceTypes = []SourceType{
	SourceFileColumn, SourceGlobalAttribute, SourceHardcoded, SourceDynamicFunction, SourceUnmapped,
}

// IsValid returns true if the source type is a recognized value.
func (s SourceType) IsValid() bool {
	return slices.Contains(sourceTypes, s)
}

// ParseSourceType converts a stored string into a SourceType.
func ParseSourceType(s string) (SourceType, error) {
	st := SourceType(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown source type %q", s)
	}

	return st, nil
}

// TransformNone is the transformation tag set by auto-mapping.
const TransformNone = "none"

// FieldMapping binds one target field to a source.
type FieldMapping struct {
	TargetField    string     `json:"target_field" yaml:"target_field"`
	SourceType     SourceType `json:"source_type" yaml:"source_type"`
	SourceValue    string     `json:"source_value,omitempty" yaml:"source_value,omitempty"`
	Transformation string     `json:"transformation,omitempty" yaml:"transformation,omitempty"`
	// Confidence is the auto-mapping score, nil for manual mappings.
	Confidence *float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	TypeValue  string   `json:"type_value,omitempty" yaml:"type_value,omitempty"`
}

// IsMapped reports whether the record supplies a value.
func (m FieldMapping) IsMapped() bool {
	return m.SourceType != "" && m.SourceType != SourceUnmapped
}

// Manual builds a mapping without a confidence score.
func Manual(target string, st SourceType, value string) FieldMapping {
	return FieldMapping{TargetField: target, SourceType: st, SourceValue: value, Transformation: TransformNone}
}

// Set is an ordered collection holding at most one mapping per target field.
type Set struct {
	items []FieldMapping
}

// NewSet builds a set from ms; a later record for the same target replaces
// an earlier one.
func NewSet(ms ...FieldMapping) *Set {
	s := &Set{items: make([]FieldMapping, 0, len(ms))}
	for _, m := range ms {
		s.Upsert(m)
	}

	return s
}

// Upsert removes any record for m.TargetField and appends m.
func (s *Set) Upsert(m FieldMapping) {
	s.Remove(m.TargetField)
	s.items = append(s.items, m)
}

// Remove deletes the record for target, reporting whether one existed.
func (s *Set) Remove(target string) bool {
	i := slices.IndexFunc(s.items, func(m FieldMapping) bool { return m.TargetField == target })
	if i < 0 {
		return false
	}

	s.items = slices.Delete(s.items, i, i+1)

	return true
}

// Get returns the record for target.
func (s *Set) Get(target string) (FieldMapping, bool) {
	return common.FindFirst(s.items, func(m FieldMapping) bool { return m.TargetField == target })
}

// IsMapped reports whether target has a record other than unmapped.
func (s *Set) IsMapped(target string) bool {
	m, ok := s.Get(target)

	return ok && m.IsMapped()
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.items)
}

// All returns a copy of the records in insertion order.
func (s *Set) All() []FieldMapping {
	return slices.Clone(s.items)
}
