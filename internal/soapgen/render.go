package soapgen

import (
	"fmt"
	"strings"

	"workday-mapper/internal/schema"
)

// lineWriter accumulates indented lines.
type lineWriter struct {
	b      strings.Builder
	indent string
}

func (w *lineWriter) line(depth int, s string) {
	for range depth {
		w.b.WriteString(w.indent)
	}

	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

// comment writes text as an XML comment. Comments may not contain "--".
func (w *lineWriter) comment(depth int, text string) {
	text = sanitize(text)
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}

	w.line(depth, "<!-- "+text+" -->")
}

func (w *lineWriter) String() string {
	return strings.TrimSuffix(w.b.String(), "\n")
}

// renderer walks a service template against resolved values.
type renderer struct {
	lineWriter

	svc        *schema.Service
	vals       resolvedValues
	selections map[string]string
	prefix     string
}

func (r *renderer) tag(name string) string {
	return r.prefix + ":" + name
}

// mapped returns the resolved value of path, or def.
func (r *renderer) mapped(path, def string) string {
	if v := r.vals.values[path]; v != "" {
		return v
	}

	return def
}

// branch returns the elements of the selected option of a choice node.
func (r *renderer) branch(el *schema.Element) []schema.Element {
	return el.Options[r.selections[el.Name]]
}

// hasValue reports whether a resolved value exists at or below el. Template
// defaults do not count.
func (r *renderer) hasValue(el *schema.Element) bool {
	switch el.Kind {
	case schema.ElementValue, schema.ElementReference:
		return r.vals.values[el.Path] != ""
	case schema.ElementChoice:
		return r.anyValue(r.branch(el))
	case schema.ElementGroup:
		for _, a := range el.Attributes {
			if a.Path != "" && r.vals.values[a.Path] != "" {
				return true
			}
		}

		return r.anyValue(el.Children)
	default:
		return false
	}
}

func (r *renderer) anyValue(els []schema.Element) bool {
	for i := range els {
		if r.hasValue(&els[i]) {
			return true
		}
	}

	return false
}

func (r *renderer) elements(els []schema.Element, depth int) {
	for i := range els {
		r.element(&els[i], depth)
	}
}

func (r *renderer) element(el *schema.Element, depth int) {
	switch el.Kind {
	case schema.ElementGroup:
		if !el.Always && !r.hasValue(el) {
			r.missing(el, depth)

			return
		}

		tag := r.tag(el.Name)
		r.line(depth, "<"+tag+r.attributes(el)+">")
		r.elements(el.Children, depth+1)
		r.line(depth, "</"+tag+">")
	case schema.ElementValue:
		v := r.mapped(el.Path, el.Default)
		if v == "" {
			r.missing(el, depth)

			return
		}

		tag := r.tag(el.Name)
		r.line(depth, fmt.Sprintf("<%s>%s</%s>", tag, Escape(v), tag))
	case schema.ElementReference:
		v := r.mapped(el.Path, el.Default)
		if v == "" {
			r.missing(el, depth)

			return
		}

		tag := r.tag(el.Name)
		id := r.tag("ID")

		r.line(depth, "<"+tag+">")

		if typ := r.referenceType(el); typ != "" {
			r.line(depth+1, fmt.Sprintf(`<%s %s="%s">%s</%s>`, id, r.tag("type"), Escape(typ), Escape(v), id))
		} else {
			r.line(depth+1, fmt.Sprintf("<%s>%s</%s>", id, Escape(v), id))
		}

		r.line(depth, "</"+tag+">")
	case schema.ElementChoice:
		branch := r.branch(el)
		if len(branch) == 0 {
			r.missing(el, depth)

			return
		}

		r.elements(branch, depth)
	}
}

// referenceType picks the explicit qualifier, then the node default, then
// the field's declared default.
func (r *renderer) referenceType(el *schema.Element) string {
	if t := r.vals.types[el.Path]; t != "" {
		return t
	}

	if el.DefaultType != "" {
		return el.DefaultType
	}

	if f, ok := r.svc.FieldByPath(el.Path); ok {
		return f.DefaultType()
	}

	return ""
}

func (r *renderer) attributes(el *schema.Element) string {
	var b strings.Builder

	for _, a := range el.Attributes {
		v := a.Value
		if v == "" && a.Path != "" {
			v = r.mapped(a.Path, a.Default)
		}

		if v == "" {
			continue
		}

		fmt.Fprintf(&b, ` %s="%s"`, r.tag(a.Name), Escape(v))
	}

	return b.String()
}

// missing writes the placeholder comment of a required node.
func (r *renderer) missing(el *schema.Element, depth int) {
	if !el.Required {
		return
	}

	text := el.Comment
	if text == "" {
		text = el.Name + " REQUIRED but not mapped"
	}

	r.comment(depth, text)
}
