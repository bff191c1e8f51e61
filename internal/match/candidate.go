package match

import (
	"sort"

	"workday-mapper/internal/common"
	"workday-mapper/internal/mapping"
	"workday-mapper/internal/schema"
	"workday-mapper/internal/source"
)

// Candidate is a scored source for one target field.
type Candidate struct {
	Source     source.Descriptor
	SourceType mapping.SourceType
	// Score is the match score, already discounted for global attributes.
	Score float64
	// TypeValue is the default reference qualifier of the target, if any.
	TypeValue string
}

// Mapping converts the candidate into a mapping record for target.
func (c Candidate) Mapping(target string) mapping.FieldMapping {
	score := c.Score

	return mapping.FieldMapping{
		TargetField:    target,
		SourceType:     c.SourceType,
		SourceValue:    c.Source.Value,
		Transformation: mapping.TransformNone,
		Confidence:     &score,
		TypeValue:      c.TypeValue,
	}
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Rank scores every source for tgt, file columns as is and global attributes
// discounted, and returns them best first. Boolean targets only rank global
// attributes.
func (m *Matcher) Rank(tgt schema.TargetField, fileColumns, globals []source.Descriptor) CandidateList {
	candidates := make(CandidateList, 0, len(fileColumns)+len(globals))

	if tgt.Type != schema.FieldBoolean {
		for _, col := range fileColumns {
			candidates = append(candidates, Candidate{
				Source:     col,
				SourceType: mapping.SourceFileColumn,
				Score:      m.Score(col, tgt),
				TypeValue:  tgt.DefaultType(),
			})
		}
	}

	for _, attr := range globals {
		candidates = append(candidates, Candidate{
			Source:     attr,
			SourceType: mapping.SourceGlobalAttribute,
			Score:      m.Score(attr, tgt) * m.weights.GlobalDiscount,
			TypeValue:  tgt.DefaultType(),
		})
	}

	sort.Stable(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by source label for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Source.Label() < c[j].Source.Label()
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	best, ok := common.First(c)
	if !ok {
		return nil
	}

	return &best
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// AboveThreshold returns candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// DefaultAmbiguityThreshold is the score difference under which the top two
// candidates are reported as ambiguous.
const DefaultAmbiguityThreshold = 5.0
