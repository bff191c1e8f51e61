package choice

import (
	"workday-mapper/internal/common"
	"workday-mapper/internal/schema"
)

// RequiredField is a required field of a selected option.
type RequiredField struct {
	schema.TargetField
	GroupID  string
	OptionID string
}

// RequiredFields lists the required fields of every selected option, in
// group then field order. Unselected groups and unknown options contribute
// nothing.
func RequiredFields(groups []schema.ChoiceGroup, selections Selections) []RequiredField {
	var out []RequiredField

	for i := range groups {
		g := &groups[i]

		opt := g.Option(selections[g.ID])
		if opt == nil {
			continue
		}

		for _, f := range opt.Fields {
			if f.Required {
				out = append(out, RequiredField{TargetField: f, GroupID: g.ID, OptionID: opt.ID})
			}
		}
	}

	return out
}

// AllRequiredFilled reports whether every required field of the selected
// options has a non-blank value.
func AllRequiredFilled(groups []schema.ChoiceGroup, selections Selections, values Values) bool {
	for _, f := range RequiredFields(groups, selections) {
		if common.IsBlank(values[f.Path]) {
			return false
		}
	}

	return true
}

// ValidationSummary is a progress view over Validate.
type ValidationSummary struct {
	Counts
	RequiredTotal  int               `json:"requiredFieldsTotal" yaml:"requiredFieldsTotal"`
	RequiredFilled int               `json:"requiredFieldsFilled" yaml:"requiredFieldsFilled"`
	IsComplete     bool              `json:"isComplete" yaml:"isComplete"`
	Errors         map[string]string `json:"errors" yaml:"errors"`
}

// Summary validates and counts filled required fields. IsComplete equals
// the IsValid of Validate for the same input.
func Summary(groups []schema.ChoiceGroup, selections Selections, values Values) ValidationSummary {
	res := Validate(groups, selections, values)
	required := RequiredFields(groups, selections)

	filled := 0

	for _, f := range required {
		if !common.IsBlank(values[f.Path]) {
			filled++
		}
	}

	return ValidationSummary{
		Counts:         res.Summary,
		RequiredTotal:  len(required),
		RequiredFilled: filled,
		IsComplete:     res.IsValid && filled == len(required),
		Errors:         res.Errors,
	}
}
