package mapping

import (
	"fmt"
	"slices"
	"sort"

	"workday-mapper/internal/diagnostic"
	"workday-mapper/internal/functions"
	"workday-mapper/internal/schema"
)

// Diagnostic codes produced by Validate.
const (
	CodeSessionNil         = "session_is_nil"
	CodeServiceMismatch    = "service_mismatch"
	CodeUnknownTarget      = "unknown_target_field"
	CodeDuplicateMapping   = "duplicate_mapping"
	CodeEmptySource        = "empty_source_value"
	CodeUnknownFunction    = "unknown_function"
	CodeInvalidTypeValue   = "invalid_type_value"
	CodeTypeValueIgnored   = "type_value_ignored"
	CodeRequiredUnmapped   = "required_unmapped"
	CodeUnknownChoice      = "unknown_choice_group"
	CodeUnknownChoiceOpt   = "unknown_choice_option"
	CodeSampleColumnAbsent = "sample_column_absent"
)

// Validate checks a session against the service it targets. It is a
// structural check only: choice field rules are left to package choice.
// fns may be nil, in which case function ids are not checked.
func Validate(s *Session, svc *schema.Service, fns *functions.Registry) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics
	if s == nil {
		res.AddError(CodeSessionNil, "session is nil", "", "")
		return res
	}

	name := svc.Operation

	if s.Service != "" && s.Service != name {
		res.AddWarning(CodeServiceMismatch,
			fmt.Sprintf("session targets %q, validating against %q", s.Service, name), name, "")
	}

	seen := make(map[string]bool)

	for i := range s.Mappings {
		m := &s.Mappings[i]

		if seen[m.TargetField] {
			res.AddError(CodeDuplicateMapping, "target field mapped more than once", name, m.TargetField)
		}

		seen[m.TargetField] = true

		f, ok := svc.FieldByName(m.TargetField)
		if !ok {
			res.AddError(CodeUnknownTarget, "no such target field", name, m.TargetField)
			continue
		}

		validateMapping(&res, name, s, m, f, fns)
	}

	set := s.Set()

	for _, f := range svc.RequiredFields() {
		if !set.IsMapped(f.Name) {
			res.AddWarning(CodeRequiredUnmapped, "required field has no mapping", name, f.Name)
		}
	}

	groups := make([]string, 0, len(s.ChoiceSelections))
	for id := range s.ChoiceSelections {
		groups = append(groups, id)
	}

	sort.Strings(groups)

	for _, id := range groups {
		g := svc.Group(id)
		if g == nil {
			res.AddWarning(CodeUnknownChoice, fmt.Sprintf("selection for undeclared group %q", id), name, id)
			continue
		}

		if opt := s.ChoiceSelections[id]; opt != "" && g.Option(opt) == nil {
			res.AddError(CodeUnknownChoiceOpt, fmt.Sprintf("group %q has no option %q", id, opt), name, id)
		}
	}

	return res
}

func validateMapping(
	res *diagnostic.Diagnostics,
	name string,
	s *Session,
	m *FieldMapping,
	f *schema.TargetField,
	fns *functions.Registry,
) {
	if !m.IsMapped() {
		return
	}

	switch m.SourceType {
	case SourceFileColumn, SourceGlobalAttribute:
		if m.SourceValue == "" {
			res.AddError(CodeEmptySource, fmt.Sprintf("%s mapping names no source", m.SourceType), name, m.TargetField)
		} else if s.SampleRow != nil {
			if _, ok := s.SampleRow[m.SourceValue]; !ok {
				res.AddInfo(CodeSampleColumnAbsent,
					fmt.Sprintf("sample row has no %q; a placeholder will be emitted", m.SourceValue), name, m.TargetField)
			}
		}
	case SourceDynamicFunction:
		if fns != nil && !fns.Has(m.SourceValue) {
			res.AddError(CodeUnknownFunction, fmt.Sprintf("unknown dynamic function %q", m.SourceValue), name, m.TargetField)
		}
	case SourceHardcoded, SourceUnmapped:
	}

	if m.TypeValue == "" {
		return
	}

	if f.Type != schema.FieldTextWithType {
		res.AddWarning(CodeTypeValueIgnored, "type_value set on a field without type options", name, m.TargetField)
		return
	}

	if !slices.Contains(f.TypeOptions(), m.TypeValue) {
		res.AddError(CodeInvalidTypeValue,
			fmt.Sprintf("type %q is not one of %v", m.TypeValue, f.TypeOptions()), name, m.TargetField)
	}
}
