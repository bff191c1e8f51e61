package source

import (
	"github.com/spf13/cast"
)

// Table is a decoded input file. Columns keep the order of the header row or
// of first appearance in JSON objects.
type Table struct {
	Columns []string
	Rows    []map[string]any
}

// Descriptors returns one file-column descriptor per column. The sample is
// the first non-blank value of the column.
func (t *Table) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(t.Columns))

	for _, col := range t.Columns {
		d := Descriptor{Value: col, DisplayName: col}

		for _, row := range t.Rows {
			v, ok := row[col]
			if !ok || v == nil || cast.ToString(v) == "" {
				continue
			}

			d.SampleValue = v

			break
		}

		out = append(out, d)
	}

	return out
}

// Row returns row i, or false when i is out of range.
func (t *Table) Row(i int) (map[string]any, bool) {
	if i < 0 || i >= len(t.Rows) {
		return nil, false
	}

	return t.Rows[i], true
}

func (t *Table) addColumn(seen map[string]bool, name string) {
	if !seen[name] {
		seen[name] = true
		t.Columns = append(t.Columns, name)
	}
}
