package session

import "errors"

var (
	// ErrInteractionActive is returned when a new interaction is started
	// while another one is open. The active draft is left untouched.
	ErrInteractionActive = errors.New("session: another interaction is active")

	// ErrNoInteraction is returned when an operation requires an open
	// interaction and the session is idle.
	ErrNoInteraction = errors.New("session: no active interaction")

	// ErrSubmissionInFlight is returned when submit or delete is re-entered
	// while a request is outstanding. The duplicate call is ignored, not
	// queued.
	ErrSubmissionInFlight = errors.New("session: submission already in flight")

	// ErrValidationFailed is returned when the draft failed validation; the
	// per-field messages are available via FieldErrors().
	ErrValidationFailed = errors.New("session: draft failed validation")

	// ErrUnknownField is returned by SetField for a field key the draft does
	// not have.
	ErrUnknownField = errors.New("session: unknown draft field")
)
