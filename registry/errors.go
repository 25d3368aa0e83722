package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for the registry backend's reason codes. The wizard
// translates these into user guidance; TransportError is the only one
// where a retry suggestion makes sense.
var (
	ErrNotFound       = errors.New("student not found")
	ErrDuplicate      = errors.New("duplicate submission")
	ErrSchemaMismatch = errors.New("registry schema mismatch")
	ErrBadReference   = errors.New("bad student reference")
	ErrTransport      = errors.New("registry unreachable")
)

// UnknownCodeError carries a reason code this build does not recognize, so
// the raw code still reaches the user for escalation.
type UnknownCodeError struct {
	Code string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown registry error code %q", e.Code)
}

// Backend reason codes on the wire.
const (
	codeNotFound       = "not_found"
	codeDuplicate      = "duplicate"
	codeSchemaMismatch = "schema_mismatch"
	codeBadReference   = "bad_reference"
)

func errorForCode(code string) error {
	switch code {
	case codeNotFound:
		return ErrNotFound
	case codeDuplicate:
		return ErrDuplicate
	case codeSchemaMismatch:
		return ErrSchemaMismatch
	case codeBadReference:
		return ErrBadReference
	default:
		return &UnknownCodeError{Code: code}
	}
}
