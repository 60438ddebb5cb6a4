package mapping

import "fmt"

// ValidationError reports the first shape violation found in an input quote
// document. Validation is fail-fast: one violation per attempt, never an
// accumulated list.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
