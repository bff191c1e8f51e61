package match

import (
	"regexp"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"workday-mapper/internal/schema"
	"workday-mapper/internal/source"
)

// minWordLen is the longest word ignored by word matching ("id", "no").
const minWordLen = 2

var (
	booleanLike = regexp.MustCompile(`(?i)^(true|false|yes|no|t|f)$`)
	dateLike    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	digitsOnly  = regexp.MustCompile(`^\d+$`)
)

// IsBooleanLike reports whether a sample is an accepted boolean spelling.
func IsBooleanLike(sample string) bool {
	return booleanLike.MatchString(sample) || sample == "0" || sample == "1"
}

// Matcher scores sources against target fields.
type Matcher struct {
	weights    Weights
	logger     glog.Logger
	splitCamel bool
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWeights replaces the default weights.
func WithWeights(w Weights) Option {
	return func(m *Matcher) {
		m.weights = w
	}
}

// WithLogger sets the logger used for auto-mapping decisions.
func WithLogger(l glog.Logger) Option {
	return func(m *Matcher) {
		m.logger = glog.Ensure(l)
	}
}

// WithCamelCaseSplit splits CamelCase labels into words before normalizing,
// so "OrgCode" compares like "Org Code".
func WithCamelCaseSplit() Option {
	return func(m *Matcher) {
		m.splitCamel = true
	}
}

// NewMatcher creates a Matcher with DefaultWeights.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{weights: DefaultWeights(), logger: glog.Nop()}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Weights returns the weights in use.
func (m *Matcher) Weights() Weights {
	return m.weights
}

func (m *Matcher) normalize(s string) string {
	if m.splitCamel {
		s = SplitCamelCase(s)
	}

	return Normalize(s)
}

// Breakdown is the itemized score of one source against one target.
type Breakdown struct {
	SourceName string
	TargetName string

	// Disqualified is set when a boolean target meets a non-boolean sample.
	Disqualified bool
	Exact        bool

	Containment            float64
	DescriptionContainment float64
	Words                  float64
	SourceCategory         string
	TargetCategory         string
	Category               float64
	Similarity             float64
	TypeBonus              float64

	Total float64
}

// Score returns the 0..100 match score of src for tgt.
func (m *Matcher) Score(src source.Descriptor, tgt schema.TargetField) float64 {
	return m.Explain(src, tgt).Total
}

// Explain scores src for tgt and returns every component.
//
// A boolean target whose sample does not look boolean is disqualified before
// names are compared, so it scores 0 even on an exact name match. A source
// without a sample is never disqualified.
func (m *Matcher) Explain(src source.Descriptor, tgt schema.TargetField) Breakdown {
	w := m.weights
	b := Breakdown{
		SourceName: m.normalize(src.Label()),
		TargetName: m.normalize(tgt.Name),
	}

	sample := src.Sample()
	hasSample := src.HasSample()

	if tgt.Type == schema.FieldBoolean && hasSample && !IsBooleanLike(sample) {
		b.Disqualified = true

		return b
	}

	if b.SourceName == "" || b.TargetName == "" {
		return b
	}

	if b.SourceName == b.TargetName {
		b.Exact = true
		b.Total = w.Exact

		return b
	}

	desc := m.normalize(tgt.Description)

	if containsEither(b.TargetName, b.SourceName) {
		b.Containment = w.ContainBase + lengthRatio(b.SourceName, b.TargetName)*w.ContainSpan
	}

	if desc != "" && containsEither(desc, b.SourceName) {
		b.DescriptionContainment = w.DescriptionBase + lengthRatio(b.SourceName, desc)*w.DescriptionSpan
	}

	b.Words = m.wordScore(words(b.SourceName), words(b.TargetName), words(desc))

	b.SourceCategory, _ = Category(b.SourceName)
	b.TargetCategory, _ = Category(b.TargetName)

	if b.SourceCategory != "" && b.TargetCategory != "" {
		switch {
		case b.SourceCategory == b.TargetCategory:
			b.Category = w.SameCategory
		case Related(b.SourceCategory, b.TargetCategory):
			b.Category = w.RelatedCategory
		}
	}

	b.Similarity = Similarity(b.SourceName, b.TargetName) * w.Similarity

	if hasSample {
		b.TypeBonus = m.typeBonus(tgt, b.TargetCategory, sample)
	}

	total := max(b.Containment, b.DescriptionContainment) + b.Words + b.Category + b.Similarity + b.TypeBonus
	b.Total = min(total, w.MaxScore)

	return b
}

// wordScore counts exact and partial word matches of the source words in
// the target words, falling back to description words at reduced weight.
func (m *Matcher) wordScore(src, tgt, desc []string) float64 {
	w := m.weights

	total := max(len(src), len(tgt))
	if total == 0 {
		return 0
	}

	var exact, partial float64

	for _, sw := range src {
		if len(sw) <= minWordLen {
			continue
		}

		if e, p := m.matchWord(sw, tgt); e || p {
			exact += boolWeight(e, 1)
			partial += boolWeight(p, 1)

			continue
		}

		e, p := m.matchWord(sw, desc)
		exact += boolWeight(e, w.DescriptionWordWeight)
		partial += boolWeight(p, w.DescriptionWordWeight)
	}

	return exact/float64(total)*w.ExactWords + partial/float64(total)*w.PartialWords
}

// matchWord reports the first exact or partial match of sw among candidates.
func (m *Matcher) matchWord(sw string, candidates []string) (exact, partial bool) {
	for _, cw := range candidates {
		if len(cw) <= minWordLen {
			continue
		}

		if sw == cw {
			return true, false
		}

		if containsEither(sw, cw) && lengthRatio(sw, cw) > m.weights.PartialOverlap {
			return false, true
		}
	}

	return false, false
}

func (m *Matcher) typeBonus(tgt schema.TargetField, targetCategory, sample string) float64 {
	typ := strings.ToLower(string(tgt.Type))

	switch {
	case tgt.Type == schema.FieldBoolean:
		return m.weights.BooleanBonus
	case (targetCategory == "email" || strings.Contains(typ, "email")) && strings.Contains(sample, "@"):
		return m.weights.TypeBonus
	case strings.Contains(typ, "date") && dateLike.MatchString(sample):
		return m.weights.TypeBonus
	case strings.Contains(typ, "number") && digitsOnly.MatchString(sample):
		return m.weights.TypeBonus
	default:
		return 0
	}
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func boolWeight(ok bool, w float64) float64 {
	if ok {
		return w
	}

	return 0
}
