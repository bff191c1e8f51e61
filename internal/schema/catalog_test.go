package schema

import (
	"testing"
	"testing/fstest"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Contract_Contingent_Worker",
		"Create_Position",
		"End_Contingent_Worker_Contract",
	}, cat.Names())

	for _, name := range cat.Names() {
		t.Run(name, func(t *testing.T) {
			svc, err := cat.Service(name)
			require.NoError(t, err)

			assert.Equal(t, DefaultVersion, svc.Version)
			assert.Equal(t, DefaultNamespace, svc.Namespace)
			assert.Equal(t, DefaultPrefix, svc.Prefix)
			assert.Equal(t, name+"_Request", svc.RequestElement())
			assert.NotEmpty(t, svc.Fields)
			assert.NotEmpty(t, svc.Template)

			diags := Check(svc)
			assert.False(t, diags.HasErrors(), "catalog check: %s", diags.Error())
		})
	}
}

func TestCatalog_CreatePosition(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	svc, err := cat.Service("Create_Position")
	require.NoError(t, err)

	required := svc.RequiredFields()
	require.Len(t, required, 1)
	assert.Equal(t, "Supervisory Organization ID", required[0].Name)
	assert.Equal(t, "Organization_Reference_ID", required[0].DefaultType())

	f, ok := svc.FieldByName("Critical Job")
	require.True(t, ok)
	assert.Equal(t, FieldBoolean, f.Type)
	require.NotNil(t, f.Boolean)
	assert.False(t, f.Boolean.Default)

	f, ok = svc.FieldByPath("Create_Position_Data.Position_Data.Position_ID")
	require.True(t, ok)
	assert.Equal(t, "Position ID", f.Name)

	_, ok = svc.FieldByName("Nope")
	assert.False(t, ok)

	cats := svc.Categories()
	assert.Equal(t, "Basic Information", cats[0])
	assert.Contains(t, cats, "Process Options")
	assert.Len(t, svc.FieldsByCategory()["Process Options"], 4)
}

func TestCatalog_ContractContingentWorker(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	svc, err := cat.Service("Contract_Contingent_Worker")
	require.NoError(t, err)

	g := svc.Group("pre_hire_selection")
	require.NotNil(t, g)
	assert.True(t, g.Required)
	assert.Equal(t, []string{
		"applicant_reference",
		"former_worker_reference",
		"student_reference",
		"create_applicant",
	}, g.OptionIDs())

	applicant := g.Option("applicant_reference")
	require.NotNil(t, applicant)
	assert.True(t, applicant.IsSimpleReference)
	require.Len(t, applicant.Fields, 1)
	assert.Equal(t, FieldTextWithType, applicant.Fields[0].Type)
	assert.True(t, applicant.Fields[0].Required)

	create := g.Option("create_applicant")
	require.NotNil(t, create)
	assert.True(t, create.IsComplexType)
	assert.True(t, create.IsExpandable)
	assert.Nil(t, g.Option("missing"))

	pos := svc.Group("position_assignment")
	require.NotNil(t, pos)
	assert.False(t, pos.Required)
	assert.Nil(t, svc.Group("missing"))

	// Option fields are reachable through the service lookups.
	f, ok := svc.FieldByName("First Name")
	require.True(t, ok)
	assert.Contains(t, f.Path, "Name_Detail_Data.First_Name")
	assert.Greater(t, len(svc.AllFields()), len(svc.Fields))
}

func TestCatalog_UnknownService(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	_, err = cat.Service("Hire_Employee")
	require.Error(t, err)

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, goerrors.CategoryNotFound, rich.Category)
	assert.Equal(t, TextCodeUnknownService, rich.TextCode)
}

func TestParseService_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing operation", "fields: []\ntemplate: []\n"},
		{"bad yaml", "operation: [\n"},
		{"node with two keywords", `
operation: X
fields: []
template:
  - group: A
    value: B
    path: A.B
`},
		{"value without path", `
operation: X
fields: []
template:
  - value: A
`},
		{"empty group", `
operation: X
fields: []
template:
  - group: A
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseService([]byte(tt.input))
			require.Error(t, err)

			var rich *goerrors.Error
			require.True(t, goerrors.As(err, &rich))
			assert.Equal(t, TextCodeInvalidCatalog, rich.TextCode)
		})
	}
}

func TestLoadCatalogFS(t *testing.T) {
	svc := []byte(`
operation: Ping
fields:
  - name: Message
    xmlPath: Ping_Data.Message
    type: text
template:
  - group: Ping_Data
    children:
      - value: Message
        path: Ping_Data.Message
`)

	fsys := fstest.MapFS{
		"services/ping.yaml":  {Data: svc},
		"services/notes.txt": {Data: []byte("ignored")},
	}

	cat, err := LoadCatalogFS(fsys, "services")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ping"}, cat.Names())

	got, err := cat.Service("Ping")
	require.NoError(t, err)
	assert.Equal(t, "Ping", got.Label)
	assert.Equal(t, []string{"Ping_Data.Message"}, got.Template[0].Paths())

	// Same operation twice is rejected.
	fsys["services/ping2.yaml"] = &fstest.MapFile{Data: svc}
	_, err = LoadCatalogFS(fsys, "services")
	assert.Error(t, err)

	_, err = LoadCatalogFS(fstest.MapFS{}, ".")
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	svc, err := cat.Service("End_Contingent_Worker_Contract")
	require.NoError(t, err)

	data, err := Marshal(svc)
	require.NoError(t, err)

	back, err := ParseService(data)
	require.NoError(t, err)
	assert.Equal(t, svc, back)
}
