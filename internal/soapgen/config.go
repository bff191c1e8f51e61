package soapgen

import (
	"workday-mapper/internal/common"
	"workday-mapper/internal/schema"
)

// Config holds configuration for request generation.
type Config struct {
	// Version is the web-service version used when neither the credential
	// nor the service names one.
	Version string `yaml:"version" json:"version"`
	// Indent is repeated once per nesting level.
	Indent string `yaml:"indent" json:"indent"`
	// Credential is the tenant the request targets. Optional.
	Credential *Credential `yaml:"credential,omitempty" json:"credential,omitempty"`
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Version: schema.DefaultVersion,
		Indent:  "  ",
	}
}

// Credential identifies a Workday tenant. Secrets are never part of it; the
// envelope only carries placeholders.
type Credential struct {
	TenantURL string `yaml:"tenant_url" json:"tenant_url"`
	Version   string `yaml:"webservice_version" json:"webservice_version"`
}

// version picks the credential version, then the service version, then the
// configured default.
func (c Config) version(svc *schema.Service) string {
	var credVersion, svcVersion string

	if c.Credential != nil {
		credVersion = c.Credential.Version
	}

	if svc != nil {
		svcVersion = svc.Version
	}

	return common.FirstNonEmpty(credVersion, svcVersion, c.Version, schema.DefaultVersion)
}
