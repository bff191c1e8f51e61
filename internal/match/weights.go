package match

// Weights holds the constants of the score composition.
type Weights struct {
	// Exact is the score of an exact normalized-name match.
	Exact float64
	// MaxScore caps the composed score.
	MaxScore float64

	// Name containment scores ContainBase + ratio*ContainSpan.
	ContainBase float64
	ContainSpan float64
	// Description containment scores DescriptionBase + ratio*DescriptionSpan
	// and replaces the name containment score when higher.
	DescriptionBase float64
	DescriptionSpan float64

	// ExactWords and PartialWords are scaled by matched/total words.
	ExactWords   float64
	PartialWords float64
	// PartialOverlap is the length ratio above which contained words count as partial matches.
	PartialOverlap float64
	// DescriptionWordWeight scales word matches found in the description.
	DescriptionWordWeight float64

	SameCategory    float64
	RelatedCategory float64
	Similarity      float64

	// TypeBonus applies to email, date and number samples that look right.
	// A target counts as email when its type mentions email or its name falls
	// in the email category; catalog types never say email, so the category
	// is what makes the email bonus reachable.
	TypeBonus float64
	// BooleanBonus applies to boolean targets with a boolean-looking sample.
	BooleanBonus float64

	// GlobalDiscount multiplies global-attribute scores.
	GlobalDiscount float64
	// MinScore is the threshold a candidate must reach to be suggested.
	MinScore float64
}

// DefaultWeights returns the calibrated weights. A valid boolean sample earns
// nothing: booleans only gate, they never boost.
func DefaultWeights() Weights {
	return Weights{
		Exact:                 100,
		MaxScore:              100,
		ContainBase:           70,
		ContainSpan:           25,
		DescriptionBase:       60,
		DescriptionSpan:       20,
		ExactWords:            50,
		PartialWords:          30,
		PartialOverlap:        0.5,
		DescriptionWordWeight: 0.8,
		SameCategory:          30,
		RelatedCategory:       15,
		Similarity:            15,
		TypeBonus:             10,
		BooleanBonus:          0,
		GlobalDiscount:        0.95,
		MinScore:              30,
	}
}

// Confidence thresholds, inclusive.
const (
	HighConfidence   = 70.0
	MediumConfidence = 50.0
	LowConfidence    = 30.0
)

// ConfidenceLabel names the band score falls into.
func ConfidenceLabel(score float64) string {
	switch {
	case score >= HighConfidence:
		return "High"
	case score >= MediumConfidence:
		return "Medium"
	case score >= LowConfidence:
		return "Low"
	default:
		return "Very Low"
	}
}

// ConfidenceColor returns the display class for the band score falls into.
func ConfidenceColor(score float64) string {
	switch {
	case score >= HighConfidence:
		return "text-green-600"
	case score >= MediumConfidence:
		return "text-yellow-600"
	case score >= LowConfidence:
		return "text-orange-600"
	default:
		return "text-red-600"
	}
}
