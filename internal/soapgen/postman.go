package soapgen

import (
	"fmt"
	"strings"

	"workday-mapper/internal/schema"
)

// DefaultTenantURL is shown when no credential names a tenant.
const DefaultTenantURL = "https://wd2-impl-services1.workday.com/ccx/service/YOUR_TENANT"

// DefaultOperation is used when PostmanInstructions gets an empty operation.
const DefaultOperation = "Create_Position"

// EndpointURL returns the Staffing endpoint for the credential's tenant.
func EndpointURL(credential *Credential) string {
	tenant := DefaultTenantURL
	version := schema.DefaultVersion

	if credential != nil {
		if credential.TenantURL != "" {
			tenant = strings.TrimSuffix(credential.TenantURL, "/")
		}

		if credential.Version != "" {
			version = credential.Version
		}
	}

	return tenant + "/Staffing/" + version
}

// PostmanInstructions returns step-by-step text for sending a generated
// request from an HTTP client.
func PostmanInstructions(credential *Credential, operation string) string {
	if operation == "" {
		operation = DefaultOperation
	}

	var b strings.Builder

	b.WriteString("Postman Setup Instructions:\n\n")
	b.WriteString("1. Create a new POST request\n")
	fmt.Fprintf(&b, "2. URL: %s\n", EndpointURL(credential))
	b.WriteString("3. Headers:\n")
	b.WriteString("   - Content-Type: text/xml\n")
	fmt.Fprintf(&b, "   - SOAPAction: %q\n", operation)
	b.WriteString("4. Body: Select \"raw\" and \"XML\"\n")
	b.WriteString("5. Paste the generated XML above\n")
	fmt.Fprintf(&b, "6. Replace %s and %s with your actual credentials\n", UsernamePlaceholder, PasswordPlaceholder)
	b.WriteString("7. Replace any {{field_name}} placeholders with actual data\n")
	b.WriteString("8. Send the request\n\n")
	b.WriteString("Expected Response:\n")
	b.WriteString("- Success: HTTP 200 with SOAP response containing the result\n")
	b.WriteString("- Error: SOAP Fault with error details")

	return b.String()
}
