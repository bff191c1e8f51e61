package choice

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	goerrors "github.com/goliatone/go-errors"

	"workday-mapper/internal/common"
	"workday-mapper/internal/schema"
)

// TextCodeInvalidSelection tags the error returned by Result.Err.
const TextCodeInvalidSelection = "INVALID_CHOICE_SELECTION"

// TypeSuffix is appended to a field path to key its reference qualifier.
const TypeSuffix = "_type"

var (
	datePattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Plain decimal notation only: no hex, NaN or infinity spellings.
	numberPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Selections maps a group id to the selected option id.
type Selections map[string]string

// Values maps a field path, or a path with TypeSuffix, to the entered value.
type Values map[string]string

// State is the validation state of one group.
type State int

const (
	StateUnselected State = iota
	StateValid
	StateInvalid
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnselected:
		return "unselected"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return common.UnknownStr
	}
}

// Counts tallies groups per state. Each group is counted exactly once.
type Counts struct {
	TotalGroups      int `json:"totalGroups" yaml:"totalGroups"`
	ValidGroups      int `json:"validGroups" yaml:"validGroups"`
	InvalidGroups    int `json:"invalidGroups" yaml:"invalidGroups"`
	UnselectedGroups int `json:"unselectedGroups" yaml:"unselectedGroups"`
}

// GroupResult is the outcome of validating one group.
type GroupResult struct {
	GroupID  string
	Option   string
	State    State
	Required bool
	Errors   map[string]string
}

// IsValid reports whether the group blocks nothing: it has no errors.
func (g GroupResult) IsValid() bool {
	return len(g.Errors) == 0
}

// Result is the outcome of Validate.
type Result struct {
	IsValid bool              `json:"isValid" yaml:"isValid"`
	Errors  map[string]string `json:"errors" yaml:"errors"`
	Summary Counts            `json:"summary" yaml:"summary"`
	Groups  []GroupResult     `json:"-" yaml:"-"`
}

// ErrorKeys returns the error keys sorted.
func (r Result) ErrorKeys() []string {
	return slices.Sorted(maps.Keys(r.Errors))
}

// Err returns nil when the result is valid, otherwise a validation error
// carrying one field error per entry of Errors.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}

	fields := make([]goerrors.FieldError, 0, len(r.Errors))
	for _, k := range r.ErrorKeys() {
		fields = append(fields, goerrors.FieldError{Field: k, Message: r.Errors[k]})
	}

	return goerrors.NewValidation("choice groups: validation failed", fields...).
		WithTextCode(TextCodeInvalidSelection)
}

// Validate validates every group against selections and values.
func Validate(groups []schema.ChoiceGroup, selections Selections, values Values) Result {
	res := Result{
		IsValid: true,
		Errors:  make(map[string]string),
		Summary: Counts{TotalGroups: len(groups)},
	}

	for i := range groups {
		gr := ValidateGroup(&groups[i], selections[groups[i].ID], values)
		res.Groups = append(res.Groups, gr)

		maps.Copy(res.Errors, gr.Errors)

		switch gr.State {
		case StateUnselected:
			res.Summary.UnselectedGroups++
		case StateInvalid:
			res.Summary.InvalidGroups++
		case StateValid:
			res.Summary.ValidGroups++
		}

		if !gr.IsValid() {
			res.IsValid = false
		}
	}

	return res
}

// ValidateGroup validates one group given the selected option id, which is
// empty when nothing is selected.
func ValidateGroup(g *schema.ChoiceGroup, selected string, values Values) GroupResult {
	res := GroupResult{GroupID: g.ID, Option: selected, Required: g.Required, Errors: map[string]string{}}

	if selected == "" {
		res.State = StateUnselected
		if g.Required {
			res.Errors[g.ID] = "Required: Please select one option for " + g.Name
		}

		return res
	}

	opt := g.Option(selected)
	if opt == nil {
		res.State = StateInvalid
		res.Errors[g.ID] = "Invalid option selected for " + g.Name

		return res
	}

	res.Errors = ValidateOptionFields(opt, values)
	if len(res.Errors) > 0 {
		res.State = StateInvalid
	} else {
		res.State = StateValid
	}

	return res
}

// ValidateOptionFields checks the fields of one option. Later checks on a
// field overwrite earlier messages for the same path.
func ValidateOptionFields(opt *schema.ChoiceOption, values Values) map[string]string {
	errs := make(map[string]string)

	for _, f := range opt.Fields {
		value := values[f.Path]
		blank := common.IsBlank(value)

		if blank {
			if f.Required {
				errs[f.Path] = f.Name + " is required"
			}

			continue
		}

		if f.Type == schema.FieldTextWithType && values[f.Path+TypeSuffix] == "" {
			errs[f.Path+TypeSuffix] = "Please select a type for " + f.Name
		}

		switch f.Type {
		case schema.FieldNumber:
			if !isNumber(value) {
				errs[f.Path] = f.Name + " must be a valid number"
			}
		case schema.FieldDate:
			if !datePattern.MatchString(value) {
				errs[f.Path] = f.Name + " must be a valid date (YYYY-MM-DD)"
			}
		case schema.FieldText:
			n := utf8.RuneCountInString(value)
			if f.MinLength > 0 && n < f.MinLength {
				errs[f.Path] = fmt.Sprintf("%s must be at least %d characters", f.Name, f.MinLength)
			}

			if f.MaxLength > 0 && n > f.MaxLength {
				errs[f.Path] = fmt.Sprintf("%s must be at most %d characters", f.Name, f.MaxLength)
			}
		}

		if strings.Contains(strings.ToLower(f.Name), "email") && !emailPattern.MatchString(value) {
			errs[f.Path] = f.Name + " must be a valid email address"
		}
	}

	return errs
}

func isNumber(value string) bool {
	value = strings.TrimSpace(value)
	if !numberPattern.MatchString(value) {
		return false
	}

	v, err := strconv.ParseFloat(value, 64)

	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}
