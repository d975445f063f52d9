package domain

import "errors"

var (
	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidOption = errors.New("invalid option index")
	ErrAlreadyVoted  = errors.New("user has already voted in this poll")
)

// ValidationError reports a rejected poll field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
