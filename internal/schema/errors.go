package schema

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes carried by catalog errors.
const (
	TextCodeUnknownService = "UNKNOWN_SERVICE"
	TextCodeInvalidCatalog = "INVALID_CATALOG"
)

func unknownServiceError(name string, known []string) error {
	err := goerrors.New(fmt.Sprintf("unknown service %q", name), goerrors.CategoryNotFound).
		WithTextCode(TextCodeUnknownService)
	err.WithMetadata(map[string]any{
		"service": name,
		"known":   known,
	})

	return err
}

func invalidCatalogError(source string, cause error) error {
	return goerrors.Wrap(cause, goerrors.CategoryValidation, "invalid service catalog "+source).
		WithTextCode(TextCodeInvalidCatalog)
}
