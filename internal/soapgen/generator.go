package soapgen

import (
	"fmt"
	"slices"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/spf13/cast"

	"workday-mapper/internal/choice"
	"workday-mapper/internal/common"
	"workday-mapper/internal/functions"
	"workday-mapper/internal/mapping"
	"workday-mapper/internal/schema"
)

// Request is the input of one generation run.
type Request struct {
	Mappings          []mapping.FieldMapping
	ChoiceSelections  map[string]string
	ChoiceFieldValues map[string]string
	// SampleRow is the source record mapped values are read from.
	SampleRow map[string]any
}

// RequestFromSession builds a Request from a saved session. A nil row uses
// the session's own sample row; callers holding a JSON payload pass the
// result of Session.SampleWithPayload.
func RequestFromSession(s *mapping.Session, row map[string]any) Request {
	if row == nil {
		row = s.SampleRow
	}

	return Request{
		Mappings:          s.Mappings,
		ChoiceSelections:  s.ChoiceSelections,
		ChoiceFieldValues: s.ChoiceFieldValues,
		SampleRow:         row,
	}
}

// Generator renders SOAP requests. It holds no per-request state and can be
// shared between goroutines.
type Generator struct {
	config    Config
	functions *functions.Registry
	logger    glog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithFunctions sets the registry dynamic_function mappings execute against.
func WithFunctions(r *functions.Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.functions = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l glog.Logger) Option {
	return func(g *Generator) {
		g.logger = glog.Ensure(l)
	}
}

// NewGenerator creates a new generator. Empty config fields take their
// DefaultConfig values.
func NewGenerator(config Config, opts ...Option) *Generator {
	def := DefaultConfig()
	if config.Version == "" {
		config.Version = def.Version
	}

	if config.Indent == "" {
		config.Indent = def.Indent
	}

	g := &Generator{
		config:    config,
		functions: functions.Default(),
		logger:    glog.Nop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.config
}

// GenerateFor renders the request for the named service of catalog. A name
// the catalog does not know yields the generic envelope.
func (g *Generator) GenerateFor(catalog *schema.Catalog, name string, req Request) (string, error) {
	svc, err := catalog.Service(name)
	if err != nil {
		g.logger.Warn("no template for service, writing generic envelope", "service", name)

		return g.generic(), nil
	}

	return g.Generate(svc, req)
}

// Generate renders the SOAP request of svc.
func (g *Generator) Generate(svc *schema.Service, req Request) (string, error) {
	if svc == nil || common.IsEmpty(svc.Template) {
		return g.generic(), nil
	}

	vals, err := g.resolve(svc, req)
	if err != nil {
		return "", err
	}

	g.logger.Debug("resolved request values",
		"service", svc.Operation,
		"values", len(vals.values),
		"types", len(vals.types),
	)

	r := &renderer{
		svc:        svc,
		vals:       vals,
		selections: req.ChoiceSelections,
		prefix:     svc.Prefix,
	}

	return g.envelope(svc, r), nil
}

// resolvedValues holds field values and reference qualifiers keyed by path.
type resolvedValues struct {
	values map[string]string
	types  map[string]string
}

func (g *Generator) resolve(svc *schema.Service, req Request) (resolvedValues, error) {
	out := resolvedValues{
		values: make(map[string]string),
		types:  make(map[string]string),
	}

	for _, m := range req.Mappings {
		if !m.IsMapped() {
			continue
		}

		f, ok := svc.FieldByName(m.TargetField)
		if !ok {
			g.logger.Warn("mapping names an unknown field, skipped",
				"service", svc.Operation,
				"target", m.TargetField,
			)

			continue
		}

		v, err := g.mappedValue(m, req.SampleRow)
		if err != nil {
			return out, fmt.Errorf("mapping %q: %w", m.TargetField, err)
		}

		out.values[f.Path] = v

		if m.TypeValue != "" {
			out.types[f.Path] = m.TypeValue
		}
	}

	if err := g.overlayChoiceValues(&out, req); err != nil {
		return out, err
	}

	return out, nil
}

func (g *Generator) mappedValue(m mapping.FieldMapping, row map[string]any) (string, error) {
	switch m.SourceType {
	case mapping.SourceHardcoded:
		return m.SourceValue, nil
	case mapping.SourceDynamicFunction:
		return g.functions.Execute(m.SourceValue)
	case mapping.SourceFileColumn, mapping.SourceGlobalAttribute:
		if s := cast.ToString(row[m.SourceValue]); s != "" {
			return s, nil
		}

		return placeholder(m.SourceValue), nil
	default:
		return "", nil
	}
}

// overlayChoiceValues applies values entered for choice option fields. They
// win over mapped values. Keys are visited in sorted order so functions with
// side effects on a seeded source run in a stable sequence.
func (g *Generator) overlayChoiceValues(out *resolvedValues, req Request) error {
	keys := make([]string, 0, len(req.ChoiceFieldValues))
	for k := range req.ChoiceFieldValues {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, key := range keys {
		v := req.ChoiceFieldValues[key]
		if v == "" {
			continue
		}

		if base, ok := strings.CutSuffix(key, choice.TypeSuffix); ok {
			out.types[base] = v

			continue
		}

		switch raw, inRow := req.SampleRow[v]; {
		case g.functions.Has(v):
			res, err := g.functions.Execute(v)
			if err != nil {
				return fmt.Errorf("choice value %q: %w", key, err)
			}

			v = res
		case inRow:
			v = cast.ToString(raw)
		}

		out.values[key] = v
	}

	return nil
}

func placeholder(name string) string {
	return "{{" + name + "}}"
}
