package pathresolve

import (
	"reflect"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/cast"
)

// Resolver resolves paths against decoded JSON. The zero value is not
// usable; call New.
type Resolver struct {
	logger glog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report first-element fallbacks.
func WithLogger(l glog.Logger) Option {
	return func(r *Resolver) {
		r.logger = glog.Ensure(l)
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: glog.Nop()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var defaultResolver = New()

// Resolve resolves pattern against data with the default resolver.
func Resolve(data any, pattern string, criteria map[string]any) (any, bool) {
	return defaultResolver.Resolve(data, pattern, criteria)
}

// Resolve walks data along pattern. It returns (nil, false) when the path is
// malformed, a property is missing, an index is out of bounds, a non-sequence
// is indexed or a null is met on the way.
func (r *Resolver) Resolve(data any, pattern string, criteria map[string]any) (any, bool) {
	if data == nil {
		return nil, false
	}

	segments, err := ParsePattern(pattern)
	if err != nil {
		return nil, false
	}

	current := data

	for _, seg := range segments {
		if seg.Name != "" {
			obj, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}

			current = obj[seg.Name]
		}

		if seg.Indexed {
			items, ok := current.([]any)
			if !ok {
				return nil, false
			}

			if seg.Wildcard {
				current, ok = r.pick(items, criteria, pattern)
			} else {
				ok = seg.Index < len(items)
				if ok {
					current = items[seg.Index]
				}
			}

			if !ok {
				return nil, false
			}
		}

		if current == nil {
			return nil, false
		}
	}

	return current, true
}

func (r *Resolver) pick(items []any, criteria map[string]any, pattern string) (any, bool) {
	if len(items) == 0 {
		return nil, false
	}

	if len(criteria) == 0 {
		return items[0], true
	}

	for _, item := range items {
		if matchCount(item, criteria) == len(criteria) {
			return item, true
		}
	}

	for _, item := range items {
		if matchCount(item, criteria) > 0 {
			r.logger.Debug("wildcard matched on partial criteria", "path", pattern)

			return item, true
		}
	}

	r.logger.Warn("wildcard fallback to first element", "path", pattern, "criteria", criteria)

	return items[0], true
}

// matchCount counts the criteria fields present in item with an equal value.
func matchCount(item any, criteria map[string]any) int {
	obj, ok := item.(map[string]any)
	if !ok {
		return 0
	}

	n := 0

	for k, want := range criteria {
		got, present := obj[k]
		if present && equalValue(got, want) {
			n++
		}
	}

	return n
}

// equalValue compares scalars by their string form so 2, 2.0 and "2" are
// equal. Objects, arrays and nil compare structurally.
func equalValue(got, want any) bool {
	if !isScalar(got) || !isScalar(want) {
		return reflect.DeepEqual(got, want)
	}

	return cast.ToString(got) == cast.ToString(want)
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, map[string]any, []any:
		return false
	default:
		return true
	}
}
