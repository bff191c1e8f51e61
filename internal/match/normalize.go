package match

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	separatorRun = regexp.MustCompile(`[_\-\s]+`)
	nonWordChar  = regexp.MustCompile(`[^a-z0-9\s]`)
)

// Normalize lower-cases s, turns runs of separators into one space, drops
// everything but ASCII letters, digits and whitespace, and trims the result.
//
// Examples:
//   - "Supervisory_Organization-ID" -> "supervisory organization id"
//   - "E-mail (work)" -> "e mail work"
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = separatorRun.ReplaceAllString(s, " ")
	s = nonWordChar.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// words splits a normalized string on whitespace.
func words(normalized string) []string {
	return strings.Fields(normalized)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// SplitCamelCase rewrites "OrgCode" as "Org Code" so that Normalize yields
// separate words.
func SplitCamelCase(s string) string {
	return strings.Join(tokenizeCamelCase(s), " ")
}
