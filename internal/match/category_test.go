package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"work email", "email"},
		{"mobile", "phone"},
		{"last name", "name"},
		{"site", "location"},
		{"org code", "organization"},
		{"job posting title", "position"},
		{"supervisor", "supervisor"},
		{"availability date", "date"},
		{"employee number", "id"},
		{"worker", "employee"},
		{"salary", "cost"},
		{"default hours", "time"},
		{"kind", "type"},
		{"stage", "status"},
		{"remarks", "description"},
		{"purchase order", "requisition"},
		{"agreement", "contract"},
		// "pos" contains "po"
		{"po", "position"},
		// "state" is listed under location before status
		{"state", "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Category(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := Category("zzz")
	assert.False(t, ok)

	_, ok = Category("")
	assert.False(t, ok)
}

func TestRelated(t *testing.T) {
	assert.True(t, Related("name", "employee"))
	assert.True(t, Related("employee", "name"))
	assert.True(t, Related("organization", "location"))
	assert.True(t, Related("requisition", "description"))
	assert.False(t, Related("name", "name"))
	assert.False(t, Related("email", "phone"))
}

func TestCategories(t *testing.T) {
	all := Categories()

	assert.Len(t, all, 17)
	assert.Equal(t, "email", all[0])
	assert.Equal(t, "contract", all[len(all)-1])
}
