package pathresolve

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DecodeJSON decodes a JSON document into maps, slices and float64 numbers.
func DecodeJSON(data []byte) (any, error) {
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	return out, nil
}
