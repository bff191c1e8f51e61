package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workday-mapper/internal/diagnostic"
)

func codes(ds []diagnostic.Diagnostic) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestCheck(t *testing.T) {
	svc, err := ParseService([]byte(`
operation: Broken
fields:
  - name: Org
    xmlPath: Data.Org.ID
    type: text
  - name: Org
    xmlPath: Data.Other
    type: text
  - name: Worker
    xmlPath: Data.Worker.ID
    type: text_with_type
    typeOptions: [WID]
  - name: Spare
    xmlPath: Data.Spare
    type: text
choiceGroups:
  - id: pick
    name: Pick
    options:
      - id: a
        name: A
        fields: []
      - id: b
        name: B
        fields: []
template:
  - group: Data
    attributes:
      - name: Flag
        path: Data.Flag
    children:
      - ref: Org
        path: Data.Org.ID
      - value: Worker
        path: Data.Worker.ID
      - value: Ghost
        path: Data.Ghost
      - value: Other
        path: Data.Other
      - choice: pick
        options:
          a:
            - value: Other
              path: Data.Other
          z:
            - value: Other
              path: Data.Other
      - choice: nothing
        options:
          a:
            - value: Other
              path: Data.Other
`))
	require.NoError(t, err)

	diags := Check(svc)

	assert.ElementsMatch(t, []string{
		CodeDuplicateField,
		CodeReferenceType,
		CodeUnknownPath,
		CodeUnknownOption,
		CodeUnknownGroup,
	}, codes(diags.Errors))

	assert.ElementsMatch(t, []string{
		CodeUnknownAttrPath,
		CodeValueOnReference,
		CodeUnboundOption,
		CodeUnusedField,
	}, codes(diags.Warnings))

	assert.Equal(t, "Data.Spare", diags.Warnings[len(diags.Warnings)-1].Path)
}

func TestElement_Walk(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	svc, err := cat.Service("Contract_Contingent_Worker")
	require.NoError(t, err)

	options := make(map[string]bool)

	for i := range svc.Template {
		svc.Template[i].Walk(func(el *Element, option string) {
			if el.Name == "First_Name" {
				options[option] = true
			}
		})
	}

	assert.Equal(t, map[string]bool{"create_applicant": true}, options)
}

func TestElementKind_String(t *testing.T) {
	assert.Equal(t, "group", ElementGroup.String())
	assert.Equal(t, "value", ElementValue.String())
	assert.Equal(t, "ref", ElementReference.String())
	assert.Equal(t, "choice", ElementChoice.String())
	assert.Equal(t, "unknown", ElementKind(42).String())
}
