package handlers

import (
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// ReservationResponse is the wire shape of a reservation, shared by every
// handler that returns one.
type ReservationResponse struct {
	ID                int64  `json:"id"`
	Local             string `json:"local"`
	Sala              string `json:"sala"`
	DataInicio        string `json:"data_inicio"`
	DataFim           string `json:"data_fim"`
	Responsavel       string `json:"responsavel"`
	Cafe              bool   `json:"cafe"`
	QuantidadePessoas *int   `json:"quantidade_pessoas"`
	Descricao         string `json:"descricao"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ReservationFromDomain converts a stored reservation to its wire shape.
// Timestamps cross the boundary as ISO-8601 UTC.
func ReservationFromDomain(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                r.ID,
		Local:             r.Local,
		Sala:              r.Sala,
		DataInicio:        r.DataInicio.UTC().Format(time.RFC3339),
		DataFim:           r.DataFim.UTC().Format(time.RFC3339),
		Responsavel:       r.Responsavel,
		Cafe:              r.Cafe,
		QuantidadePessoas: r.QuantidadePessoas,
		Descricao:         r.Descricao,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ReservationsFromDomain converts a list of stored reservations.
func ReservationsFromDomain(reservations []*domain.Reservation) []*ReservationResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, ReservationFromDomain(r))
	}
	return out
}

// ParseWireTime parses an ISO-8601 timestamp from a request body. RFC3339 is
// the canonical form; the zone-less variant is accepted and read as UTC.
func ParseWireTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
