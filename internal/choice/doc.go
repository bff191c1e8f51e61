// Package choice validates choice group selections and the values entered
// for the fields of the selected options.
//
// Each group moves through Unselected, Selected, then Valid or Invalid:
//
//   - no selection: Unselected; an error only when the group is required
//   - selection naming a missing option: Invalid
//   - selection whose option fields fail checks: Invalid
//   - otherwise: Valid
//
// Failures are reported through the returned error map, keyed by group id or
// field path; nothing in this package fails on user input.
package choice
