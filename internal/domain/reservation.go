package domain

import "time"

// Reservation represents a meeting room reservation in the system.
// The ID is assigned by the store and is immutable once created.
type Reservation struct {
	ID          int64
	Local       string
	Sala        string
	DataInicio  time.Time
	DataFim     time.Time
	Responsavel string
	Cafe        bool

	// QuantidadePessoas is present if and only if Cafe is true.
	QuantidadePessoas *int

	Descricao string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReservationInput is the normalized payload produced by validation and sent
// to the store on create/update. Timestamps are absolute (UTC).
type ReservationInput struct {
	Local             string
	Sala              string
	DataInicio        time.Time
	DataFim           time.Time
	Responsavel       string
	Cafe              bool
	QuantidadePessoas *int
	Descricao         string
}

// IsUpcoming returns true if the reservation starts after the given instant.
func (r *Reservation) IsUpcoming(now time.Time) bool {
	return r.DataInicio.After(now)
}

// IsOngoing returns true if the given instant falls inside the reserved window.
func (r *Reservation) IsOngoing(now time.Time) bool {
	return !now.Before(r.DataInicio) && now.Before(r.DataFim)
}
