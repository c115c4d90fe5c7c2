package reservastore

import "errors"

var (
	// ErrReservationNotFound is returned when the store has no reservation
	// with the requested id.
	ErrReservationNotFound = errors.New("reservation not found in store")

	// ErrInternal is returned on client-side failures (request build,
	// transport, timeouts).
	ErrInternal = errors.New("reservastore client: internal error")

	// ErrInvalidResponse is returned when the store answers with a body the
	// client cannot interpret.
	ErrInvalidResponse = errors.New("reservastore client: invalid response")
)

// APIError carries the store-provided error message from a non-2xx response.
// Its message is what the user sees in the banner.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// AsAPIError unwraps err into an *APIError if one is present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
