package match

import (
	"slices"
	"strings"
)

type category struct {
	name     string
	patterns []string
}

// categories is scanned in order; the first category with a matching pattern wins.
var categories = []category{
	{"email", []string{"email", "mail", "e-mail", "emailaddress", "email_address"}},
	{"phone", []string{"phone", "telephone", "tel", "mobile", "cell", "phonenumber", "phone_number"}},
	{"name", []string{"name", "fullname", "full_name", "firstname", "first_name", "lastname", "last_name"}},
	{"location", []string{"location", "loc", "site", "place", "address", "city", "country", "state"}},
	{"organization", []string{"organization", "org", "company", "department", "dept", "division", "unit"}},
	{"position", []string{"position", "pos", "job", "title", "jobtitle", "job_title", "role"}},
	{"supervisor", []string{"supervisor", "manager", "boss", "lead", "chief", "head"}},
	{"date", []string{"date", "startdate", "start_date", "enddate", "end_date", "effectivedate", "effective_date"}},
	{"id", []string{"id", "identifier", "code", "number", "num", "ref", "reference"}},
	{"employee", []string{"employee", "emp", "worker", "staff", "personnel"}},
	{"cost", []string{"cost", "price", "amount", "salary", "pay", "compensation", "rate"}},
	{"time", []string{"time", "hours", "duration", "period", "shift"}},
	{"type", []string{"type", "category", "class", "classification", "kind"}},
	{"status", []string{"status", "state", "condition", "stage"}},
	{"description", []string{"description", "desc", "details", "notes", "comments", "remarks"}},
	{"requisition", []string{"requisition", "req", "request", "order"}},
	{"contract", []string{"contract", "agreement", "engagement", "assignment"}},
}

// related lists categories that earn partial credit; lookups go both ways.
// "job" is not a category of its own and never matches.
var related = map[string][]string{
	"name":        {"employee", "supervisor"},
	"location":    {"organization"},
	"position":    {"employee", "job"},
	"id":          {"employee", "position", "requisition"},
	"description": {"position", "job", "requisition"},
}

// Category classifies a normalized name. A pattern matches when either string
// contains the other.
func Category(normalized string) (string, bool) {
	if normalized == "" {
		return "", false
	}

	for _, c := range categories {
		for _, p := range c.patterns {
			if strings.Contains(normalized, p) || strings.Contains(p, normalized) {
				return c.name, true
			}
		}
	}

	return "", false
}

// Categories returns the category names in classification order.
func Categories() []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = c.name
	}

	return out
}

// Related reports whether a and b are distinct categories with an adjacency
// in either direction.
func Related(a, b string) bool {
	if a == b {
		return false
	}

	return slices.Contains(related[a], b) || slices.Contains(related[b], a)
}
