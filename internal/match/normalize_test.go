package match

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Position ID", "position id"},
		{"position_id", "position id"},
		{"POSITION-ID", "position id"},
		{"  Job   Posting\tTitle ", "job posting title"},
		{"Supervisory_Organization-ID", "supervisory organization id"},
		{"E-mail (work)", "e mail work"},
		{"Cost ($)", "cost"},
		{"Café", "caf"},
		{"__", ""},
		{"", ""},

		// Punctuation between separators leaves a double space
		{"a . b", "a  b"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWords(t *testing.T) {
	got := words(Normalize("a . b_c"))
	want := []string{"a", "b", "c"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_item-ID", []string{"order", "item", "ID"}},
		{"Org Code", []string{"Org", "Code"}},
		{"ID", []string{"ID"}},
		{"a", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitCamelCase(t *testing.T) {
	if got := SplitCamelCase("JobPostingTitle"); got != "Job Posting Title" {
		t.Errorf("SplitCamelCase = %q", got)
	}

	if got := Normalize(SplitCamelCase("positionID")); got != "position id" {
		t.Errorf("Normalize(SplitCamelCase) = %q", got)
	}
}
