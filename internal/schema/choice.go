package schema

// ChoiceGroup is a set of mutually exclusive options. Required means one
// option must be selected.
type ChoiceGroup struct {
	ID       string         `yaml:"id"`
	Name     string         `yaml:"name"`
	Required bool           `yaml:"required,omitempty"`
	Category string         `yaml:"category,omitempty"`
	HelpText string         `yaml:"helpText,omitempty"`
	Options  []ChoiceOption `yaml:"options"`
}

// ChoiceOption is one alternative of a ChoiceGroup.
type ChoiceOption struct {
	ID                string        `yaml:"id"`
	Name              string        `yaml:"name"`
	Description       string        `yaml:"description,omitempty"`
	Icon              string        `yaml:"icon,omitempty"`
	IsSimpleReference bool          `yaml:"isSimpleReference,omitempty"`
	IsComplexType     bool          `yaml:"isComplexType,omitempty"`
	IsExpandable      bool          `yaml:"isExpandable,omitempty"`
	Fields            []TargetField `yaml:"fields"`
}

// Option returns the option with the given id, or nil.
func (g *ChoiceGroup) Option(id string) *ChoiceOption {
	for i := range g.Options {
		if g.Options[i].ID == id {
			return &g.Options[i]
		}
	}

	return nil
}

// OptionIDs returns the option ids in declaration order.
func (g *ChoiceGroup) OptionIDs() []string {
	ids := make([]string, 0, len(g.Options))
	for _, o := range g.Options {
		ids = append(ids, o.ID)
	}

	return ids
}
