package domain

import "errors"

// ValidationError reports a field value that failed its format rule
// (phone digits, birthday layout). The operation that produced it has
// not modified any state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a missing contact or phone number where one
// was required.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ErrArgumentCount signals that a command received fewer arguments than
// it expects. It is distinct from validation failures so the two can be
// surfaced with different messages.
var ErrArgumentCount = errors.New("not enough arguments")

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
