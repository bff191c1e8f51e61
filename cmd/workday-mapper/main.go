// Package main provides the CLI entrypoint for workday-mapper.
//
// workday-mapper maps spreadsheet and JSON data onto Workday web-service
// fields:
//   - Suggests field mappings by fuzzy matching source columns to targets
//   - Validates saved mapping sessions and their choice selections
//   - Generates SOAP requests ready to paste into an HTTP client
//   - Resolves JSON paths with wildcard and criteria matching
package main

func main() {
	Execute()
}
