package schema

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// FieldType enumerates the value kinds a target field accepts.
type FieldType string

const (
	FieldText         FieldType = "text"
	FieldTextWithType FieldType = "text_with_type"
	FieldTextarea     FieldType = "textarea"
	FieldBoolean      FieldType = "boolean"
	FieldDate         FieldType = "date"
	FieldNumber       FieldType = "number"
)

var fieldTypes = []FieldType{
	FieldText, FieldTextWithType, FieldTextarea, FieldBoolean, FieldDate, FieldNumber,
}

// ParseFieldType converts a catalog string into a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	ft := FieldType(s)
	if slices.Contains(fieldTypes, ft) {
		return ft, nil
	}

	return "", fmt.Errorf("unknown field type %q", s)
}

// ReferenceSpec carries the qualifier options of a text_with_type field.
type ReferenceSpec struct {
	TypeOptions []string
	DefaultType string
}

// BooleanSpec carries the default of a boolean field.
type BooleanSpec struct {
	Default bool
}

// TargetField is one destination attribute of a web-service request.
// Reference is set iff Type is FieldTextWithType; Boolean is set iff Type is FieldBoolean.
type TargetField struct {
	Name        string
	Path        string
	Required    bool
	Type        FieldType
	Description string
	Category    string
	HelpText    string
	MinLength   int
	MaxLength   int

	Reference *ReferenceSpec
	Boolean   *BooleanSpec
}

// NewTextField builds a plain field of the given non-variant type.
func NewTextField(name, path string, typ FieldType, required bool) TargetField {
	return TargetField{Name: name, Path: path, Type: typ, Required: required}
}

// NewReferenceField builds a text_with_type field. The first option is the default
// when defaultType is empty.
func NewReferenceField(name, path string, required bool, defaultType string, options ...string) TargetField {
	if defaultType == "" && len(options) > 0 {
		defaultType = options[0]
	}

	if len(options) == 0 && defaultType != "" {
		options = []string{defaultType}
	}

	return TargetField{
		Name:      name,
		Path:      path,
		Type:      FieldTextWithType,
		Required:  required,
		Reference: &ReferenceSpec{TypeOptions: options, DefaultType: defaultType},
	}
}

// NewBooleanField builds a boolean field.
func NewBooleanField(name, path string, required, def bool) TargetField {
	return TargetField{
		Name:     name,
		Path:     path,
		Type:     FieldBoolean,
		Required: required,
		Boolean:  &BooleanSpec{Default: def},
	}
}

// DefaultType returns the reference qualifier default, or "" for other variants.
func (f TargetField) DefaultType() string {
	if f.Reference == nil {
		return ""
	}

	return f.Reference.DefaultType
}

// TypeOptions returns the permitted reference qualifiers.
func (f TargetField) TypeOptions() []string {
	if f.Reference == nil {
		return nil
	}

	return f.Reference.TypeOptions
}

// Validate checks that the variant payload matches Type.
func (f TargetField) Validate() error {
	if f.Name == "" {
		return errors.New("field name is empty")
	}

	if f.Path == "" {
		return fmt.Errorf("field %q: path is empty", f.Name)
	}

	if _, err := ParseFieldType(string(f.Type)); err != nil {
		return fmt.Errorf("field %q: %w", f.Name, err)
	}

	switch {
	case f.Type == FieldTextWithType && f.Reference == nil:
		return fmt.Errorf("field %q: text_with_type requires type options", f.Name)
	case f.Type != FieldTextWithType && f.Reference != nil:
		return fmt.Errorf("field %q: type options only apply to text_with_type", f.Name)
	case f.Type == FieldBoolean && f.Boolean == nil:
		return fmt.Errorf("field %q: boolean requires a default value", f.Name)
	case f.Type != FieldBoolean && f.Boolean != nil:
		return fmt.Errorf("field %q: default value only applies to boolean", f.Name)
	}

	if f.Reference != nil {
		if len(f.Reference.TypeOptions) == 0 {
			return fmt.Errorf("field %q: no type options", f.Name)
		}

		if !slices.Contains(f.Reference.TypeOptions, f.Reference.DefaultType) {
			return fmt.Errorf("field %q: default type %q is not one of %v",
				f.Name, f.Reference.DefaultType, f.Reference.TypeOptions)
		}
	}

	if f.MinLength < 0 || f.MaxLength < 0 || (f.MaxLength > 0 && f.MinLength > f.MaxLength) {
		return fmt.Errorf("field %q: invalid length bounds %d..%d", f.Name, f.MinLength, f.MaxLength)
	}

	return nil
}

// yamlField is the flat catalog form of a TargetField.
type yamlField struct {
	Name         string   `yaml:"name"`
	XMLPath      string   `yaml:"xmlPath"`
	Required     bool     `yaml:"required,omitempty"`
	Type         string   `yaml:"type"`
	TypeOptions  []string `yaml:"typeOptions,omitempty"`
	DefaultType  string   `yaml:"defaultType,omitempty"`
	DefaultValue *bool    `yaml:"defaultValue,omitempty"`
	Description  string   `yaml:"description,omitempty"`
	Category     string   `yaml:"category,omitempty"`
	HelpText     string   `yaml:"helpText,omitempty"`
	MinLength    int      `yaml:"minLength,omitempty"`
	MaxLength    int      `yaml:"maxLength,omitempty"`
}

// UnmarshalYAML builds the typed variant from the flat catalog form.
// A boolean without defaultValue defaults to false; a text_with_type without
// defaultType defaults to its first option.
func (f *TargetField) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlField
	if err := node.Decode(&raw); err != nil {
		return err
	}

	typ, err := ParseFieldType(raw.Type)
	if err != nil {
		return fmt.Errorf("line %d: field %q: %w", node.Line, raw.Name, err)
	}

	out := TargetField{
		Name:        raw.Name,
		Path:        raw.XMLPath,
		Required:    raw.Required,
		Type:        typ,
		Description: raw.Description,
		Category:    raw.Category,
		HelpText:    raw.HelpText,
		MinLength:   raw.MinLength,
		MaxLength:   raw.MaxLength,
	}

	switch typ {
	case FieldTextWithType:
		def := raw.DefaultType
		if def == "" && len(raw.TypeOptions) > 0 {
			def = raw.TypeOptions[0]
		}

		out.Reference = &ReferenceSpec{TypeOptions: raw.TypeOptions, DefaultType: def}
	case FieldBoolean:
		out.Boolean = &BooleanSpec{}
		if raw.DefaultValue != nil {
			out.Boolean.Default = *raw.DefaultValue
		}
	default:
		if len(raw.TypeOptions) > 0 || raw.DefaultType != "" {
			return fmt.Errorf("line %d: field %q: typeOptions given for %s field", node.Line, raw.Name, typ)
		}

		if raw.DefaultValue != nil {
			return fmt.Errorf("line %d: field %q: defaultValue given for %s field", node.Line, raw.Name, typ)
		}
	}

	if err := out.Validate(); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*f = out

	return nil
}

// MarshalYAML renders the flat catalog form.
func (f TargetField) MarshalYAML() (any, error) {
	raw := yamlField{
		Name:        f.Name,
		XMLPath:     f.Path,
		Required:    f.Required,
		Type:        string(f.Type),
		Description: f.Description,
		Category:    f.Category,
		HelpText:    f.HelpText,
		MinLength:   f.MinLength,
		MaxLength:   f.MaxLength,
	}

	if f.Reference != nil {
		raw.TypeOptions = f.Reference.TypeOptions
		raw.DefaultType = f.Reference.DefaultType
	}

	if f.Boolean != nil {
		def := f.Boolean.Default
		raw.DefaultValue = &def
	}

	return raw, nil
}
