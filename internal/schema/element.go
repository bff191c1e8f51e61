package schema

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"workday-mapper/internal/common"
)

// ElementKind is the node type of a request template.
type ElementKind int

const (
	// ElementGroup wraps child elements.
	ElementGroup ElementKind = iota
	// ElementValue is a text element bound to one field path.
	ElementValue
	// ElementReference is a <Name><ID type="..">v</ID></Name> element.
	ElementReference
	// ElementChoice emits the branch of the selected choice option.
	ElementChoice
)

// String returns the template keyword of the kind.
func (k ElementKind) String() string {
	switch k {
	case ElementGroup:
		return "group"
	case ElementValue:
		return "value"
	case ElementReference:
		return "ref"
	case ElementChoice:
		return "choice"
	default:
		return common.UnknownStr
	}
}

// Attribute is an attribute written on a group element. Either Value is a
// literal or Path names a field whose value (or Default) is used.
type Attribute struct {
	Name    string `yaml:"name"`
	Value   string `yaml:"value,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Default string `yaml:"default,omitempty"`
}

// Element is one node of a service request template. Children order is the
// emission order and must match the destination schema sequence.
type Element struct {
	Kind ElementKind
	// Name is the XML local name; for choices it is the choice group id.
	Name string
	// Path is the field path bound to value and reference nodes.
	Path        string
	Required    bool
	Always      bool
	Default     string
	DefaultType string
	Comment     string
	Attributes  []Attribute
	Children    []Element
	// Options maps a choice option id to the elements emitted when it is selected.
	Options map[string][]Element
}

type yamlElement struct {
	Group       string               `yaml:"group,omitempty"`
	Value       string               `yaml:"value,omitempty"`
	Ref         string               `yaml:"ref,omitempty"`
	Choice      string               `yaml:"choice,omitempty"`
	Path        string               `yaml:"path,omitempty"`
	Required    bool                 `yaml:"required,omitempty"`
	Always      bool                 `yaml:"always,omitempty"`
	Default     string               `yaml:"default,omitempty"`
	DefaultType string               `yaml:"defaultType,omitempty"`
	Comment     string               `yaml:"comment,omitempty"`
	Attributes  []Attribute          `yaml:"attributes,omitempty"`
	Children    []Element            `yaml:"children,omitempty"`
	Options     map[string][]Element `yaml:"options,omitempty"`
}

// UnmarshalYAML decodes the keyword form: exactly one of group, value, ref or
// choice names the node.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	var raw yamlElement
	if err := node.Decode(&raw); err != nil {
		return err
	}

	out := Element{
		Path:        raw.Path,
		Required:    raw.Required,
		Always:      raw.Always,
		Default:     raw.Default,
		DefaultType: raw.DefaultType,
		Comment:     raw.Comment,
		Attributes:  raw.Attributes,
		Children:    raw.Children,
		Options:     raw.Options,
	}

	set := 0

	for _, kw := range []struct {
		name string
		kind ElementKind
	}{
		{raw.Group, ElementGroup},
		{raw.Value, ElementValue},
		{raw.Ref, ElementReference},
		{raw.Choice, ElementChoice},
	} {
		if kw.name != "" {
			out.Kind = kw.kind
			out.Name = kw.name
			set++
		}
	}

	if set != 1 {
		return fmt.Errorf("line %d: template node needs exactly one of group, value, ref, choice", node.Line)
	}

	if err := out.validateShape(); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*e = out

	return nil
}

// MarshalYAML renders the keyword form.
func (e Element) MarshalYAML() (any, error) {
	raw := yamlElement{
		Path:        e.Path,
		Required:    e.Required,
		Always:      e.Always,
		Default:     e.Default,
		DefaultType: e.DefaultType,
		Comment:     e.Comment,
		Attributes:  e.Attributes,
		Children:    e.Children,
		Options:     e.Options,
	}

	switch e.Kind {
	case ElementGroup:
		raw.Group = e.Name
	case ElementValue:
		raw.Value = e.Name
	case ElementReference:
		raw.Ref = e.Name
	case ElementChoice:
		raw.Choice = e.Name
	default:
		return nil, fmt.Errorf("unknown element kind %d", e.Kind)
	}

	return raw, nil
}

func (e Element) validateShape() error {
	switch e.Kind {
	case ElementGroup:
		if len(e.Children) == 0 {
			return fmt.Errorf("group %q has no children", e.Name)
		}
	case ElementValue, ElementReference:
		if e.Path == "" {
			return fmt.Errorf("%s %q has no path", e.Kind, e.Name)
		}

		if len(e.Children) > 0 || len(e.Options) > 0 {
			return fmt.Errorf("%s %q cannot have children", e.Kind, e.Name)
		}
	case ElementChoice:
		if len(e.Options) == 0 {
			return fmt.Errorf("choice %q has no options", e.Name)
		}
	}

	for _, a := range e.Attributes {
		if a.Name == "" {
			return errors.New("attribute without name")
		}
	}

	return nil
}

// Walk visits e and its descendants depth-first. Choice branches are visited
// with their option id; other nodes get the option of the nearest choice ancestor.
func (e *Element) Walk(fn func(el *Element, option string)) {
	e.walk("", fn)
}

func (e *Element) walk(option string, fn func(el *Element, option string)) {
	fn(e, option)

	for i := range e.Children {
		e.Children[i].walk(option, fn)
	}

	for id, branch := range e.Options {
		for i := range branch {
			branch[i].walk(id, fn)
		}
	}
}

// Paths returns every field path bound below e, attributes included.
func (e *Element) Paths() []string {
	var out []string

	e.Walk(func(el *Element, _ string) {
		if el.Path != "" {
			out = append(out, el.Path)
		}

		for _, a := range el.Attributes {
			if a.Path != "" {
				out = append(out, a.Path)
			}
		}
	})

	return out
}
