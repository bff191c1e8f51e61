package pathresolve

import (
	"regexp"
	"strings"
)

// SmartPathType tags mappings that resolve through a pattern and strategy.
const SmartPathType = "smart_json_path"

// StableFields are the identifier fields inspected by InferMatchingStrategy,
// in priority order.
var StableFields = []string{"config_id", "name", "id", "type", "key"}

var (
	literalIndex = regexp.MustCompile(`\[\d+\]`)
	anyIndex     = regexp.MustCompile(`\[(\d+|\*)\]`)
)

// Pattern is the wildcard form of a concrete path.
type Pattern struct {
	Pattern               string   `json:"pattern" yaml:"pattern"`
	OriginalPath          string   `json:"originalPath" yaml:"originalPath"`
	RequiresArrayMatching bool     `json:"requiresArrayMatching" yaml:"requiresArrayMatching"`
	ArrayParts            []string `json:"arrayParts,omitempty" yaml:"arrayParts,omitempty"`
}

// Strategy holds the criteria used to pick array elements. ArrayPath is the
// path of the matched array with every index removed.
type Strategy struct {
	ArrayPath   string         `json:"arrayPath" yaml:"arrayPath"`
	MatchFields map[string]any `json:"matchFields" yaml:"matchFields"`
	Description string         `json:"description" yaml:"description"`
}

// SmartMapping is a stored path with its inferred matching strategy.
type SmartMapping struct {
	DisplayName      string    `json:"displayName" yaml:"displayName"`
	JSONPath         string    `json:"jsonPath" yaml:"jsonPath"`
	PathPattern      string    `json:"pathPattern" yaml:"pathPattern"`
	MatchingStrategy *Strategy `json:"matchingStrategy,omitempty" yaml:"matchingStrategy,omitempty"`
	Type             string    `json:"type" yaml:"type"`
}

// CreatePathPattern replaces every literal index of path with a wildcard.
func CreatePathPattern(path string) Pattern {
	var arrays []string

	for part := range strings.SplitSeq(path, ".") {
		if strings.Contains(part, "[") {
			arrays = append(arrays, part)
		}
	}

	return Pattern{
		Pattern:               literalIndex.ReplaceAllString(path, "[*]"),
		OriginalPath:          path,
		RequiresArrayMatching: len(arrays) > 0,
		ArrayParts:            arrays,
	}
}

// InferMatchingStrategy inspects the first element of the first array on path
// in sample and collects the stable identifier fields it carries. It returns
// nil when path has no array, sample is nil or no identifier is present.
func InferMatchingStrategy(path string, sample any) *Strategy {
	if sample == nil || !strings.Contains(path, "[") {
		return nil
	}

	segments, err := ParsePattern(path)
	if err != nil {
		return nil
	}

	current := sample

	for i, seg := range segments {
		if seg.Name != "" {
			obj, ok := current.(map[string]any)
			if !ok {
				return nil
			}

			current = obj[seg.Name]
		}

		if !seg.Indexed {
			if current == nil {
				return nil
			}

			continue
		}

		items, ok := current.([]any)
		if !ok || len(items) == 0 {
			return nil
		}

		if s := strategyFor(items[0], segments[:i+1]); s != nil {
			return s
		}

		// Keep walking with the element named by the path.
		idx := seg.Index
		if seg.Wildcard || idx >= len(items) {
			idx = 0
		}

		current = items[idx]
	}

	return nil
}

func strategyFor(first any, prefix []Segment) *Strategy {
	obj, ok := first.(map[string]any)
	if !ok {
		return nil
	}

	fields := make(map[string]any)

	var names []string

	for _, f := range StableFields {
		if v, present := obj[f]; present && isScalar(v) {
			fields[f] = v
			names = append(names, f)
		}
	}

	if len(names) == 0 {
		return nil
	}

	return &Strategy{
		ArrayPath:   anyIndex.ReplaceAllString(JoinSegments(prefix), ""),
		MatchFields: fields,
		Description: "Match by " + strings.Join(names, ", "),
	}
}

// CreateSmartMapping builds the stored form of jsonPath, inferring the
// matching strategy from sample when it is given.
func CreateSmartMapping(displayName, jsonPath string, sample any) SmartMapping {
	return SmartMapping{
		DisplayName:      displayName,
		JSONPath:         jsonPath,
		PathPattern:      CreatePathPattern(jsonPath).Pattern,
		MatchingStrategy: InferMatchingStrategy(jsonPath, sample),
		Type:             SmartPathType,
	}
}

// ApplySmartMapping resolves m against data with the default resolver.
func ApplySmartMapping(data any, m SmartMapping) (any, bool) {
	return defaultResolver.Apply(data, m)
}

// Apply resolves m against data. Mappings that are not smart resolve their
// JSONPath literally.
func (r *Resolver) Apply(data any, m SmartMapping) (any, bool) {
	if m.Type != SmartPathType {
		return r.Resolve(data, m.JSONPath, nil)
	}

	var criteria map[string]any
	if m.MatchingStrategy != nil {
		criteria = m.MatchingStrategy.MatchFields
	}

	return r.Resolve(data, m.PathPattern, criteria)
}

// DescribePath renders path for display: indices dropped, underscores as
// spaces, segments joined by arrows.
func DescribePath(path string) string {
	parts := strings.Split(path, ".")
	for i, p := range parts {
		p = literalIndex.ReplaceAllString(p, "")
		p = strings.ReplaceAll(p, "[*]", "")
		parts[i] = strings.ReplaceAll(p, "_", " ")
	}

	return strings.Join(parts, " → ")
}
