// Package source reads tabular and JSON inputs into source descriptors: the
// file columns and global attributes a target field can be mapped from.
package source

import (
	"strings"

	"github.com/spf13/cast"
)

// Descriptor is a candidate mapping source. SampleValue is nil when no
// sample is known.
type Descriptor struct {
	Value       string `json:"value" yaml:"value"`
	DisplayName string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	SampleValue any    `json:"sampleValue,omitempty" yaml:"sampleValue,omitempty"`
}

// Label returns the display name, falling back to the value.
func (d Descriptor) Label() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}

	return d.Value
}

// Sample returns the trimmed string form of the sample value.
func (d Descriptor) Sample() string {
	if d.SampleValue == nil {
		return ""
	}

	return strings.TrimSpace(cast.ToString(d.SampleValue))
}

// HasSample reports whether a non-blank sample is present.
func (d Descriptor) HasSample() bool {
	return d.Sample() != ""
}
