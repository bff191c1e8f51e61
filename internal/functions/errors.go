package functions

import (
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// TextCodeUnknownFunction marks a mapping naming an unregistered function.
const TextCodeUnknownFunction = "UNKNOWN_FUNCTION"

// UnknownFunctionError reports a dynamic_function mapping whose id is not
// registered. It unwraps to a go-errors bad-input error.
type UnknownFunctionError struct {
	ID    string
	Known []string

	rich *goerrors.Error
}

func newUnknownFunctionError(id string, known []string) *UnknownFunctionError {
	rich := goerrors.New(fmt.Sprintf("unknown dynamic function %q", id), goerrors.CategoryBadInput).
		WithTextCode(TextCodeUnknownFunction)
	rich.WithMetadata(map[string]any{
		"function": id,
		"known":    known,
	})

	return &UnknownFunctionError{ID: id, Known: known, rich: rich}
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown dynamic function %q", e.ID)
}

func (e *UnknownFunctionError) Unwrap() error {
	return e.rich
}
