// Package soapgen renders Workday SOAP requests from a service template and
// a set of field mappings.
//
// A request is assembled in three steps. Mappings are resolved into values
// keyed by target field path; choice field values are laid over them; the
// service element template is then walked and every node whose path holds a
// value is written. Groups are written only when something below them has a
// value, unless the template marks them always. Required nodes left without
// a value produce a placeholder comment so the gap is visible in the output.
//
// The envelope carries a WS-Security UsernameToken whose credentials are the
// literal placeholders {{ISU_USERNAME}} and {{ISU_PASSWORD}}; the caller (or
// the person pasting the request into an HTTP client) substitutes them.
package soapgen
