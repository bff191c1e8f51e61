// Package diagnostic provides structured errors, warnings and notes produced
// while checking a service catalog against its element template.
//
// Key capabilities:
//   - Template paths that do not resolve to a declared field
//   - Reference elements bound to fields that carry no type qualifier
//   - Choice bindings naming unknown groups or options
//   - Fields declared but never emitted by the template
package diagnostic
