package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTimeRange is returned when data_inicio is not strictly
	// before data_fim.
	ErrInvalidTimeRange = errors.New("data_inicio must be before data_fim")

	// ErrQuantidadeRequired is returned when catering is requested without a
	// headcount.
	ErrQuantidadeRequired = errors.New("quantidade_pessoas is required when cafe is requested")

	// ErrInternal is returned on unexpected service failures.
	ErrInternal = errors.New("reservations service: internal error")
)
