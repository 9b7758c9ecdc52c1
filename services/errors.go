// services/errors.go
//
// Error taxonomy shared by all services. Controllers match these with
// errors.As and translate them to inline form messages, redirects or
// JSON envelopes; anything else is an unexpected server error.
package services

// ValidationError reports bad input shape or length.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports a reference that does not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AuthError reports a credential mismatch or unauthorized action.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }
