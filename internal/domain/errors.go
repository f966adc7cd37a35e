package domain

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrCandidateNotFound    = errors.New("candidate not found")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrAssessmentIncomplete = errors.New("assessment incomplete")
)

// ValidationError reports a user-input constraint violation. It is
// surfaced to the user as an inline message and is never fatal.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a human-readable reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
