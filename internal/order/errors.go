package order

import "fmt"

// ErrorKind classifies a validation failure.
type ErrorKind string

const (
	MissingField      ErrorKind = "missing_field"
	PasswordMismatch  ErrorKind = "password_mismatch"
	InvalidEmail      ErrorKind = "invalid_email"
	InvalidGuestCount ErrorKind = "invalid_guest_count"
)

// Error lets a kind be used as an errors.Is target.
func (k ErrorKind) Error() string { return string(k) }

// ValidationError is a recoverable rejection of submitted form data. Message
// is shown to the user verbatim.
type ValidationError struct {
	Kind    ErrorKind
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Field, e.Message)
}

// Is matches a ValidationError against its kind.
func (e *ValidationError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func invalid(kind ErrorKind, field Field, msg string) error {
	return &ValidationError{Kind: kind, Field: field, Message: msg}
}
