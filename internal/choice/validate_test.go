package choice

import (
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workday-mapper/internal/schema"
)

func personGroup(required bool) schema.ChoiceGroup {
	code := schema.NewTextField("Phone Country Code", "P.Code", schema.FieldText, false)
	code.MinLength = 2
	code.MaxLength = 3

	return schema.ChoiceGroup{
		ID:       "person",
		Name:     "Person Selection",
		Required: required,
		Options: []schema.ChoiceOption{
			{
				ID:                "existing",
				Name:              "Existing Person",
				IsSimpleReference: true,
				Fields: []schema.TargetField{
					schema.NewReferenceField("Person ID", "P.Person_Reference.ID", true, "", "Applicant_ID", "WID"),
				},
			},
			{
				ID:            "create",
				Name:          "Create Person",
				IsComplexType: true,
				Fields: []schema.TargetField{
					schema.NewTextField("First Name", "P.First_Name", schema.FieldText, true),
					schema.NewTextField("Email Address", "P.Email", schema.FieldText, false),
					schema.NewTextField("Start Date", "P.Start", schema.FieldDate, false),
					schema.NewTextField("Hours", "P.Hours", schema.FieldNumber, false),
					code,
				},
			},
		},
	}
}

func TestValidate_RequiredUnselected(t *testing.T) {
	groups := []schema.ChoiceGroup{{ID: "g", Name: "G", Required: true, Options: []schema.ChoiceOption{{ID: "a", Name: "A"}}}}

	res := Validate(groups, Selections{}, Values{})

	assert.False(t, res.IsValid)
	assert.Equal(t, "Required: Please select one option for G", res.Errors["g"])
	assert.Equal(t, Counts{TotalGroups: 1, UnselectedGroups: 1}, res.Summary)
}

func TestValidate_OptionalUnselected(t *testing.T) {
	res := Validate([]schema.ChoiceGroup{personGroup(false)}, nil, nil)

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Equal(t, Counts{TotalGroups: 1, UnselectedGroups: 1}, res.Summary)
	require.NoError(t, res.Err())
}

func TestValidate_InvalidOption(t *testing.T) {
	res := Validate([]schema.ChoiceGroup{personGroup(true)}, Selections{"person": "adopt"}, nil)

	assert.False(t, res.IsValid)
	assert.Equal(t, "Invalid option selected for Person Selection", res.Errors["person"])
	assert.Equal(t, 1, res.Summary.InvalidGroups)
}

func TestValidateOptionFields(t *testing.T) {
	g := personGroup(true)
	existing := g.Option("existing")
	create := g.Option("create")

	tests := []struct {
		name     string
		opt      *schema.ChoiceOption
		values   Values
		expected map[string]string
	}{
		{
			name:     "required blank",
			opt:      existing,
			values:   Values{"P.Person_Reference.ID": "   "},
			expected: map[string]string{"P.Person_Reference.ID": "Person ID is required"},
		},
		{
			name:     "missing type",
			opt:      existing,
			values:   Values{"P.Person_Reference.ID": "A-1"},
			expected: map[string]string{"P.Person_Reference.ID_type": "Please select a type for Person ID"},
		},
		{
			name:     "reference complete",
			opt:      existing,
			values:   Values{"P.Person_Reference.ID": "A-1", "P.Person_Reference.ID_type": "WID"},
			expected: map[string]string{},
		},
		{
			name: "field checks",
			opt:  create,
			values: Values{
				"P.First_Name": "Ada",
				"P.Email":      "ada@example",
				"P.Start":      "2025-1-2",
				"P.Hours":      "forty",
				"P.Code":       "1",
			},
			expected: map[string]string{
				"P.Email": "Email Address must be a valid email address",
				"P.Start": "Start Date must be a valid date (YYYY-MM-DD)",
				"P.Hours": "Hours must be a valid number",
				"P.Code":  "Phone Country Code must be at least 2 characters",
			},
		},
		{
			name: "field checks pass",
			opt:  create,
			values: Values{
				"P.First_Name": "Ada",
				"P.Email":      "ada@example.com",
				"P.Start":      "2025-01-02",
				"P.Hours":      "37.5",
				"P.Code":       "44",
			},
			expected: map[string]string{},
		},
		{
			name:     "exponent number",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Hours": " -1.5e2 "},
			expected: map[string]string{},
		},
		{
			name:     "nan rejected",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Hours": "NaN"},
			expected: map[string]string{"P.Hours": "Hours must be a valid number"},
		},
		{
			name:     "infinity rejected",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Hours": "Inf"},
			expected: map[string]string{"P.Hours": "Hours must be a valid number"},
		},
		{
			name:     "hex rejected",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Hours": "0x10"},
			expected: map[string]string{"P.Hours": "Hours must be a valid number"},
		},
		{
			name:     "overflow rejected",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Hours": "1e400"},
			expected: map[string]string{"P.Hours": "Hours must be a valid number"},
		},
		{
			name:     "too long",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Code": "4444"},
			expected: map[string]string{"P.Code": "Phone Country Code must be at most 3 characters"},
		},
		{
			name:     "optional blank skipped",
			opt:      create,
			values:   Values{"P.First_Name": "Ada", "P.Email": " "},
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidateOptionFields(tt.opt, tt.values))
		})
	}
}

func TestValidate_EmailByName(t *testing.T) {
	opt := &schema.ChoiceOption{
		ID: "o",
		Fields: []schema.TargetField{
			schema.NewReferenceField("Work EMAIL Reference", "E.ID", false, "", "Email_ID"),
		},
	}

	errs := ValidateOptionFields(opt, Values{"E.ID": "not-an-address", "E.ID_type": "Email_ID"})

	assert.Equal(t, map[string]string{"E.ID": "Work EMAIL Reference must be a valid email address"}, errs)
}

func TestValidate_Aggregate(t *testing.T) {
	groups := []schema.ChoiceGroup{
		personGroup(true),
		{ID: "pos", Name: "Position", Options: []schema.ChoiceOption{{ID: "none", Name: "None"}}},
		{ID: "req", Name: "Requisition", Required: true, Options: []schema.ChoiceOption{{ID: "x", Name: "X"}}},
	}

	res := Validate(groups, Selections{"person": "create", "pos": "none"}, Values{})

	assert.False(t, res.IsValid)
	assert.Equal(t, Counts{TotalGroups: 3, ValidGroups: 1, InvalidGroups: 1, UnselectedGroups: 1}, res.Summary)
	assert.Equal(t, []string{"P.First_Name", "req"}, res.ErrorKeys())

	require.Len(t, res.Groups, 3)
	assert.Equal(t, StateInvalid, res.Groups[0].State)
	assert.Equal(t, StateValid, res.Groups[1].State)
	assert.Equal(t, StateUnselected, res.Groups[2].State)

	err := res.Err()
	require.Error(t, err)

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, goerrors.CategoryValidation, rich.Category)
	assert.Equal(t, TextCodeInvalidSelection, rich.TextCode)
	require.Len(t, rich.AllValidationErrors(), 2)
	assert.Equal(t, "P.First_Name", rich.AllValidationErrors()[0].Field)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unselected", StateUnselected.String())
	assert.Equal(t, "valid", StateValid.String())
	assert.Equal(t, "invalid", StateInvalid.String())
	assert.Equal(t, "unknown", State(9).String())
}
