// Package schema describes Workday web-service operations: target fields,
// mutually exclusive choice groups and the element template that fixes the
// order of the generated request body.
//
// Services are plain YAML, one file per operation. The catalog shipped with
// the module is embedded; LoadCatalogDir reads an override directory.
//
// # Field types
//
// TargetField is a tagged union keyed by Type:
//   - text_with_type carries a ReferenceSpec (typeOptions, defaultType)
//   - boolean carries a BooleanSpec (defaultValue)
//   - text, textarea, date and number carry no payload
//
// The YAML decoder rejects payloads given for the wrong type.
//
// # Template
//
// Each template node names exactly one of:
//
//	group:  wrapper element, children in schema order
//	value:  text element bound to a field path
//	ref:    <Name><ID type="...">v</ID></Name> bound to a text_with_type path
//	choice: branches keyed by choice option id
//
// Check cross-validates the template against the declared fields.
package schema
