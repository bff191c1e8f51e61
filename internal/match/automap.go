package match

import (
	"workday-mapper/internal/mapping"
	"workday-mapper/internal/schema"
	"workday-mapper/internal/source"
)

// Stats summarizes an auto-mapping run. Mapped counts the fields suggested by
// the run; HighConfidence, MediumConfidence and LowConfidence sum to Mapped.
type Stats struct {
	Total            int `json:"total" yaml:"total"`
	Mapped           int `json:"mapped" yaml:"mapped"`
	HighConfidence   int `json:"highConfidence" yaml:"highConfidence"`
	MediumConfidence int `json:"mediumConfidence" yaml:"mediumConfidence"`
	LowConfidence    int `json:"lowConfidence" yaml:"lowConfidence"`
	Unmapped         int `json:"unmapped" yaml:"unmapped"`
}

// Result is the outcome of AutoMap.
type Result struct {
	Mappings []mapping.FieldMapping `json:"mappings" yaml:"mappings"`
	Stats    Stats                  `json:"stats" yaml:"stats"`
}

// FindBestMatch returns the best source for tgt, or nil when tgt is already
// mapped in existing or no source reaches the minimum score.
//
// File columns are tried first unless tgt is boolean. Global attributes are
// discounted and only tried for boolean targets or when no file column
// qualified. Only a strictly higher score replaces the current best, so ties
// keep the earlier source.
func (m *Matcher) FindBestMatch(
	tgt schema.TargetField,
	fileColumns, globals []source.Descriptor,
	existing *mapping.Set,
) *Candidate {
	if existing != nil && existing.IsMapped(tgt.Name) {
		return nil
	}

	var (
		best      *Candidate
		bestScore float64
	)

	consider := func(src source.Descriptor, st mapping.SourceType, score float64) {
		if score > bestScore && score >= m.weights.MinScore {
			bestScore = score
			best = &Candidate{Source: src, SourceType: st, Score: score, TypeValue: tgt.DefaultType()}
		}
	}

	isBoolean := tgt.Type == schema.FieldBoolean

	if !isBoolean {
		for _, col := range fileColumns {
			consider(col, mapping.SourceFileColumn, m.Score(col, tgt))
		}
	}

	if isBoolean || best == nil {
		for _, attr := range globals {
			consider(attr, mapping.SourceGlobalAttribute, m.Score(attr, tgt)*m.weights.GlobalDiscount)
		}
	}

	return best
}

// AutoMap suggests a mapping for every target that is not mapped yet. The
// existing records are copied, never modified; a suggestion replaces any
// existing record for its target.
func (m *Matcher) AutoMap(
	targets []schema.TargetField,
	fileColumns, globals []source.Descriptor,
	existing []mapping.FieldMapping,
) Result {
	set := mapping.NewSet(existing...)
	stats := Stats{Total: len(targets)}

	for _, tgt := range targets {
		cand := m.FindBestMatch(tgt, fileColumns, globals, set)
		if cand == nil {
			continue
		}

		set.Upsert(cand.Mapping(tgt.Name))
		stats.Mapped++

		switch {
		case cand.Score >= HighConfidence:
			stats.HighConfidence++
		case cand.Score >= MediumConfidence:
			stats.MediumConfidence++
		default:
			stats.LowConfidence++
		}

		m.logger.Debug("auto-mapped field",
			"target", tgt.Name,
			"source", cand.Source.Value,
			"source_type", string(cand.SourceType),
			"score", cand.Score,
		)
	}

	stats.Unmapped = stats.Total - stats.Mapped

	return Result{Mappings: set.All(), Stats: stats}
}
