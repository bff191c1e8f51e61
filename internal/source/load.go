package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadFile loads a .csv, .xlsx or .json file by extension.
func LoadFile(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file %s: %w", path, err)
		}
		defer f.Close()

		return ReadCSV(f)
	case ".xlsx":
		return LoadXLSX(path)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON file %s: %w", path, err)
		}

		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported source file %s: want .csv, .xlsx or .json", path)
	}
}

// ReadCSV reads a header row followed by records. Short records leave the
// missing columns out of the row.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty CSV file")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	t := &Table{}
	seen := make(map[string]bool)

	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
		t.addColumn(seen, header[i])
	}

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		t.appendRecord(header, record)
	}

	return t, nil
}

// LoadXLSX reads the active sheet of a workbook.
func LoadXLSX(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(file.GetActiveSheetIndex())

	rows, err := file.Rows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.New("empty XLSX file")
	}

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t := &Table{}
	seen := make(map[string]bool)

	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		t.addColumn(seen, header[i])
	}

	for rows.Next() {
		record, err := rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		t.appendRecord(header, record)
	}

	return t, nil
}

// appendRecord adds a row unless every cell is blank.
func (t *Table) appendRecord(header, record []string) {
	row := make(map[string]any, len(header))
	empty := true

	for i, name := range header {
		if i >= len(record) || name == "" {
			continue
		}

		row[name] = record[i]

		if strings.TrimSpace(record[i]) != "" {
			empty = false
		}
	}

	if !empty {
		t.Rows = append(t.Rows, row)
	}
}

// ParseJSON reads an array of objects, or an object whose first array
// property holds the objects.
func ParseJSON(data []byte) (*Table, error) {
	iter := jsoniter.ParseBytes(json, data)

	t := &Table{}
	seen := make(map[string]bool)

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		t.readRows(iter, seen)
	case jsoniter.ObjectValue:
		found := false

		iter.ReadObjectCB(func(it *jsoniter.Iterator, _ string) bool {
			if !found && it.WhatIsNext() == jsoniter.ArrayValue {
				found = true
				t.readRows(it, seen)

				return true
			}

			it.Skip()

			return true
		})

		if !found && iter.Error == nil {
			return nil, errors.New("JSON object has no array of records")
		}
	default:
		return nil, errors.New("JSON source must be an array or an object holding an array")
	}

	if iter.Error != nil {
		return nil, fmt.Errorf("failed to parse JSON source: %w", iter.Error)
	}

	return t, nil
}

func (t *Table) readRows(iter *jsoniter.Iterator, seen map[string]bool) {
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		if it.WhatIsNext() != jsoniter.ObjectValue {
			it.Skip()

			return true
		}

		row := make(map[string]any)

		it.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			row[key] = it.Read()
			t.addColumn(seen, key)

			return true
		})

		t.Rows = append(t.Rows, row)

		return true
	})
}

// LoadGlobals reads global attributes from a YAML or JSON file. The file is
// either a name-to-value map, read in sorted key order, or a list of
// descriptors.
func LoadGlobals(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read globals file %s: %w", path, err)
	}

	return ParseGlobals(data)
}

// ParseGlobals parses the globals file format. JSON is valid YAML, so one
// decoder serves both.
func ParseGlobals(data []byte) ([]Descriptor, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse globals: %w", err)
	}

	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]

	switch root.Kind {
	case yaml.SequenceNode:
		var list []Descriptor
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("failed to decode globals list: %w", err)
		}

		return list, nil
	case yaml.MappingNode:
		var m map[string]any
		if err := root.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode globals map: %w", err)
		}

		names := make([]string, 0, len(m))
		for k := range m {
			names = append(names, k)
		}

		sort.Strings(names)

		out := make([]Descriptor, 0, len(names))
		for _, name := range names {
			out = append(out, Descriptor{Value: name, DisplayName: name, SampleValue: m[name]})
		}

		return out, nil
	default:
		return nil, errors.New("globals must be a map or a list")
	}
}
