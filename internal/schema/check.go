package schema

import (
	"fmt"
	"sort"

	"workday-mapper/internal/diagnostic"
)

// Diagnostic codes produced by Check.
const (
	CodeInvalidField     = "invalid_field"
	CodeDuplicateField   = "duplicate_field"
	CodeDuplicatePath    = "duplicate_path"
	CodeUnknownPath      = "unknown_path"
	CodeReferenceType    = "reference_type"
	CodeValueOnReference = "value_on_reference"
	CodeUnknownGroup     = "unknown_choice_group"
	CodeUnknownOption    = "unknown_choice_option"
	CodeUnboundOption    = "unbound_choice_option"
	CodeUnusedField      = "unused_field"
	CodeUnknownAttrPath  = "unknown_attribute_path"
)

// Check reports inconsistencies between a service's fields, choice groups and
// its element template.
func Check(svc *Service) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	name := svc.Operation
	byPath := make(map[string]TargetField)
	names := make(map[string]bool)

	for _, f := range svc.AllFields() {
		if err := f.Validate(); err != nil {
			diags.AddError(CodeInvalidField, err.Error(), name, f.Path)
		}

		if names[f.Name] {
			diags.AddError(CodeDuplicateField, fmt.Sprintf("field name %q declared twice", f.Name), name, f.Path)
		}

		names[f.Name] = true

		if _, dup := byPath[f.Path]; dup {
			diags.AddError(CodeDuplicatePath, fmt.Sprintf("path declared by %q and another field", f.Name), name, f.Path)
		}

		byPath[f.Path] = f
	}

	used := make(map[string]bool)

	for i := range svc.Template {
		svc.Template[i].Walk(func(el *Element, _ string) {
			checkElement(svc, el, byPath, used, &diags)
		})
	}

	var unused []string

	for p := range byPath {
		if !used[p] {
			unused = append(unused, p)
		}
	}

	sort.Strings(unused)

	for _, p := range unused {
		diags.AddWarning(CodeUnusedField,
			fmt.Sprintf("field %q is never emitted by the template", byPath[p].Name), name, p)
	}

	return diags
}

func checkElement(
	svc *Service,
	el *Element,
	byPath map[string]TargetField,
	used map[string]bool,
	diags *diagnostic.Diagnostics,
) {
	name := svc.Operation

	switch el.Kind {
	case ElementValue, ElementReference:
		f, ok := byPath[el.Path]
		if !ok {
			diags.AddError(CodeUnknownPath, fmt.Sprintf("%s %q binds an undeclared path", el.Kind, el.Name), name, el.Path)

			return
		}

		used[el.Path] = true

		if el.Kind == ElementReference && f.Type != FieldTextWithType {
			diags.AddError(CodeReferenceType,
				fmt.Sprintf("reference %q bound to %s field %q", el.Name, f.Type, f.Name), name, el.Path)
		}

		if el.Kind == ElementValue && f.Type == FieldTextWithType {
			diags.AddWarning(CodeValueOnReference,
				fmt.Sprintf("value %q drops the type qualifier of %q", el.Name, f.Name), name, el.Path)
		}
	case ElementChoice:
		g := svc.Group(el.Name)
		if g == nil {
			diags.AddError(CodeUnknownGroup, fmt.Sprintf("choice group %q is not declared", el.Name), name, "")

			return
		}

		ids := make([]string, 0, len(el.Options))
		for id := range el.Options {
			ids = append(ids, id)
		}

		sort.Strings(ids)

		for _, id := range ids {
			if g.Option(id) == nil {
				diags.AddError(CodeUnknownOption,
					fmt.Sprintf("choice group %q has no option %q", g.ID, id), name, "")
			}
		}

		for _, id := range g.OptionIDs() {
			if _, ok := el.Options[id]; !ok {
				diags.AddWarning(CodeUnboundOption,
					fmt.Sprintf("option %q of %q emits nothing", id, g.ID), name, "")
			}
		}
	case ElementGroup:
	}

	for _, a := range el.Attributes {
		if a.Path == "" {
			continue
		}

		if _, ok := byPath[a.Path]; ok {
			used[a.Path] = true
		} else if a.Default == "" {
			diags.AddWarning(CodeUnknownAttrPath,
				fmt.Sprintf("attribute %q binds an undeclared path with no default", a.Name), name, a.Path)
		}
	}
}
