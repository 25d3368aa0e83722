package wizard

import "errors"

var (
	ErrNumberRequired   = errors.New("student number required")
	ErrPasswordRequired = errors.New("password required")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrNotVerified      = errors.New("identity not verified")
	ErrIdentityLost     = errors.New("identity lost")
	ErrConsentRequired  = errors.New("consent required")
	ErrUnknownField     = errors.New("unknown field")
	ErrNoPending        = errors.New("no pending submission")
	ErrNoPicker         = errors.New("picker not available")
)

// ValidationError blocks a submission locally: it never reaches the
// network layer. Field names which input should receive focus.
type ValidationError struct {
	Field   string
	Label   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Field
}
