// Package pathresolve resolves dotted, indexed paths into decoded JSON.
//
// A segment is a property name optionally followed by an index:
//
//	request.requester.email        plain properties
//	request.attributes[2].value    literal index
//	request.attributes[*].value    wildcard, element chosen by match criteria
//
// Wildcards pick the first element matching all criteria, then the first
// matching any criterion, then the first element. The last tier keeps
// resolution working across environments whose identifiers differ but can
// silently read the wrong element; the Resolver logs a warning when it is taken.
//
// A SmartMapping stores the wildcard pattern of a concrete path plus the
// stable identifiers (config_id, name, id, type, key) found in a sample
// document, so later documents of the same shape resolve to the same element.
package pathresolve
