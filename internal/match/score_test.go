package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workday-mapper/internal/schema"
	"workday-mapper/internal/source"
)

func col(name string, sample any) source.Descriptor {
	return source.Descriptor{Value: name, SampleValue: sample}
}

func field(name string, typ schema.FieldType, desc string) schema.TargetField {
	var f schema.TargetField

	switch typ {
	case schema.FieldBoolean:
		f = schema.NewBooleanField(name, "Data."+name, false, false)
	case schema.FieldTextWithType:
		f = schema.NewReferenceField(name, "Data."+name+".ID", false, "", "WID")
	default:
		f = schema.NewTextField(name, "Data."+name, typ, false)
	}

	f.Description = desc

	return f
}

func TestScore_ExactMatch(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		source string
		target schema.TargetField
	}{
		{"Position ID", field("Position ID", schema.FieldText, "")},
		{"position_id", field("Position ID", schema.FieldText, "")},
		{"POSITION-ID", field("Position ID", schema.FieldText, "")},
		{"Default Hours", field("Default Hours", schema.FieldNumber, "Standard weekly hours")},
		{"Run Now", field("Run Now", schema.FieldBoolean, "")},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.InDelta(t, 100.0, m.Score(col(tt.source, nil), tt.target), 1e-9)
		})
	}
}

func TestScore_BooleanDisqualification(t *testing.T) {
	m := NewMatcher()
	critical := field("Critical Job", schema.FieldBoolean, "Whether this is a critical position")

	for _, sample := range []any{"maybe", "2", "Y", "truth", 42} {
		assert.Zero(t, m.Score(col("Critical Job", sample), critical), "sample %v", sample)
	}

	for _, sample := range []any{"true", "FALSE", "Yes", "no", "t", "F", "0", "1", " yes ", true, false, 1} {
		assert.InDelta(t, 100.0, m.Score(col("Critical Job", sample), critical), 1e-9, "sample %v", sample)
	}

	// No sample means nothing to disqualify on.
	assert.InDelta(t, 100.0, m.Score(col("Critical Job", nil), critical), 1e-9)
	assert.InDelta(t, 100.0, m.Score(col("Critical Job", "  "), critical), 1e-9)

	b := m.Explain(col("Critical Job", "maybe"), critical)
	assert.True(t, b.Disqualified)
	assert.False(t, b.Exact)
}

func TestScore_Composition(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name     string
		source   source.Descriptor
		target   schema.TargetField
		expected float64
	}{
		{
			name:     "word overlap and category",
			source:   col("Job Title", "Engineer"),
			target:   field("Job Posting Title", schema.FieldText, "Title to display in job postings"),
			expected: 50.0*2/3 + 30 + 15*(1-8.0/17.0),
		},
		{
			name:     "containment capped",
			source:   col("Location", nil),
			target:   field("Location ID", schema.FieldTextWithType, "Physical work location"),
			expected: 100,
		},
		{
			name:     "email bonus",
			source:   col("Work Email", "jo@example.com"),
			target:   field("Email Address", schema.FieldText, ""),
			expected: 25 + 30 + 15*(1-12.0/13.0) + 10,
		},
		{
			name:     "date bonus",
			source:   col("Start", "2025-01-02"),
			target:   field("Availability Date", schema.FieldDate, "Date the position becomes available"),
			expected: 30 + 15*(1-15.0/17.0) + 10,
		},
		{
			name:     "number bonus only",
			source:   col("zzz", "40"),
			target:   field("Default Hours", schema.FieldNumber, ""),
			expected: 10,
		},
		{
			name:     "related category",
			source:   col("Manager Name", nil),
			target:   field("Supervisor", schema.FieldText, ""),
			expected: 15 + 15*(1-10.0/12.0),
		},
		{
			name:     "nothing in common",
			source:   col("qqqq", nil),
			target:   field("xxxx", schema.FieldText, ""),
			expected: 0,
		},
		{
			name:     "empty source name",
			source:   col("()", nil),
			target:   field("Comment", schema.FieldTextarea, ""),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, m.Score(tt.source, tt.target), 1e-6)
		})
	}
}

func TestExplain(t *testing.T) {
	m := NewMatcher()

	b := m.Explain(col("Job Title", nil), field("Job Posting Title", schema.FieldText, "Title to display in job postings"))

	assert.Equal(t, "job title", b.SourceName)
	assert.Equal(t, "job posting title", b.TargetName)
	assert.Zero(t, b.Containment)
	assert.Zero(t, b.DescriptionContainment)
	assert.InDelta(t, 50.0*2/3, b.Words, 1e-9)
	assert.Equal(t, "position", b.SourceCategory)
	assert.Equal(t, "position", b.TargetCategory)
	assert.InDelta(t, 30.0, b.Category, 1e-9)
	assert.Zero(t, b.TypeBonus)
	assert.InDelta(t, b.Words+b.Category+b.Similarity, b.Total, 1e-9)
}

func TestScore_DescriptionWords(t *testing.T) {
	m := NewMatcher()
	tgt := field("Comment", schema.FieldTextarea, "Business process comment")

	b := m.Explain(col("Process Notes", nil), tgt)

	// "process" is found in the description at 0.8 weight, "notes" nowhere.
	assert.InDelta(t, 0.8/2*50, b.Words, 1e-9)
}

func TestScore_Range(t *testing.T) {
	m := NewMatcher()
	targets := []schema.TargetField{
		field("Supervisory Organization ID", schema.FieldTextWithType, "The supervisory organization that will own this position"),
		field("Job Posting Title", schema.FieldText, "Title to display in job postings"),
		field("Critical Job", schema.FieldBoolean, ""),
		field("Default Hours", schema.FieldNumber, ""),
	}
	sources := []source.Descriptor{
		col("Org Code", "SUP-1"), col("Hours", "40"), col("Title Title Title", "x"), col("Job", nil), col("", nil),
	}

	for _, tgt := range targets {
		for _, src := range sources {
			s := m.Score(src, tgt)
			require.GreaterOrEqual(t, s, 0.0)
			require.LessOrEqual(t, s, 100.0)
		}
	}
}

func TestWithCamelCaseSplit(t *testing.T) {
	tgt := field("Job Posting Title", schema.FieldText, "")

	plain := NewMatcher()
	split := NewMatcher(WithCamelCaseSplit())

	assert.Less(t, plain.Score(col("JobPostingTitle", nil), tgt), 100.0)
	assert.InDelta(t, 100.0, split.Score(col("JobPostingTitle", nil), tgt), 1e-9)
}

func TestWithWeights(t *testing.T) {
	w := DefaultWeights()
	w.Exact = 80

	m := NewMatcher(WithWeights(w))

	assert.InDelta(t, 80.0, m.Score(col("Comment", nil), field("Comment", schema.FieldTextarea, "")), 1e-9)
	assert.Equal(t, w, m.Weights())
}

func TestIsBooleanLike(t *testing.T) {
	for _, s := range []string{"true", "False", "YES", "no", "T", "f", "0", "1"} {
		assert.True(t, IsBooleanLike(s), s)
	}

	for _, s := range []string{"", "y", "n", "2", "on", "off", "true "} {
		assert.False(t, IsBooleanLike(s), s)
	}
}
