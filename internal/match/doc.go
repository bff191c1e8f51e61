// Package match scores mapping sources against target fields and builds
// auto-mapping suggestions.
//
// A score is a number from 0 to 100 composed of:
//   - an exact normalized-name match, which short-circuits to 100
//   - name containment, or containment in the target description
//   - word overlap between the names, retried against description words
//   - a semantic category bonus (same or related category)
//   - Levenshtein similarity
//   - a small bonus when the sample value looks like the target type
//
// Boolean targets are special: a sample that does not look boolean scores 0,
// and file columns are never considered for them.
//
// Every constant of the composition lives in Weights; DefaultWeights returns
// the calibrated set. A Matcher holds no mutable state and may be shared.
package match
