package schema

// Service version and namespace defaults.
const (
	DefaultVersion   = "v45.0"
	DefaultNamespace = "urn:com.workday/bsvc"
	DefaultPrefix    = "bsvc"
)

// Service describes one web-service operation: its target fields, choice
// groups and the element template of the request body.
type Service struct {
	Operation    string        `yaml:"operation"`
	Label        string        `yaml:"label,omitempty"`
	Description  string        `yaml:"description,omitempty"`
	Category     string        `yaml:"category,omitempty"`
	Version      string        `yaml:"version,omitempty"`
	Namespace    string        `yaml:"namespace,omitempty"`
	Prefix       string        `yaml:"prefix,omitempty"`
	Fields       []TargetField `yaml:"fields"`
	ChoiceGroups []ChoiceGroup `yaml:"choiceGroups,omitempty"`
	Template     []Element     `yaml:"template"`
}

// FieldByName finds a field by its label, searching plain fields before
// choice option fields.
func (s *Service) FieldByName(name string) (*TargetField, bool) {
	return s.findField(func(f *TargetField) bool { return f.Name == name })
}

// FieldByPath finds a field by its xmlPath.
func (s *Service) FieldByPath(path string) (*TargetField, bool) {
	return s.findField(func(f *TargetField) bool { return f.Path == path })
}

func (s *Service) findField(match func(*TargetField) bool) (*TargetField, bool) {
	for i := range s.Fields {
		if match(&s.Fields[i]) {
			return &s.Fields[i], true
		}
	}

	for gi := range s.ChoiceGroups {
		for oi := range s.ChoiceGroups[gi].Options {
			opt := &s.ChoiceGroups[gi].Options[oi]
			for fi := range opt.Fields {
				if match(&opt.Fields[fi]) {
					return &opt.Fields[fi], true
				}
			}
		}
	}

	return nil, false
}

// AllFields returns plain fields followed by every choice option field.
func (s *Service) AllFields() []TargetField {
	out := append([]TargetField(nil), s.Fields...)

	for _, g := range s.ChoiceGroups {
		for _, o := range g.Options {
			out = append(out, o.Fields...)
		}
	}

	return out
}

// RequiredFields returns the required plain fields.
func (s *Service) RequiredFields() []TargetField {
	var out []TargetField

	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f)
		}
	}

	return out
}

// Categories returns field categories in first-seen order.
func (s *Service) Categories() []string {
	seen := make(map[string]bool)

	var out []string

	for _, f := range s.Fields {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}

	return out
}

// FieldsByCategory groups plain fields by category.
func (s *Service) FieldsByCategory() map[string][]TargetField {
	out := make(map[string][]TargetField)
	for _, f := range s.Fields {
		out[f.Category] = append(out[f.Category], f)
	}

	return out
}

// Group returns the choice group with the given id, or nil.
func (s *Service) Group(id string) *ChoiceGroup {
	for i := range s.ChoiceGroups {
		if s.ChoiceGroups[i].ID == id {
			return &s.ChoiceGroups[i]
		}
	}

	return nil
}

// RequestElement is the local name of the request body element.
func (s *Service) RequestElement() string {
	return s.Operation + "_Request"
}

func (s *Service) applyDefaults() {
	if s.Version == "" {
		s.Version = DefaultVersion
	}

	if s.Namespace == "" {
		s.Namespace = DefaultNamespace
	}

	if s.Prefix == "" {
		s.Prefix = DefaultPrefix
	}

	if s.Label == "" {
		s.Label = s.Operation
	}
}
