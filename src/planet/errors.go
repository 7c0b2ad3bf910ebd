package planet

import "errors"

// Store-level errors surfaced by the Repository and id validation.
var (
	ErrNotFound      = errors.New("planet not found")
	ErrDuplicateName = errors.New("planet name already taken")
	ErrInvalidId     = errors.New("invalid planet id")
)

// ValidationError reports malformed or missing request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// UpstreamError reports a transport failure of the appearance lookup.
// A no-match lookup is not an error; only the transport failing is.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "appearance lookup failed: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }
