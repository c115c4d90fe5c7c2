package reservastore

import (
	"fmt"
	"time"

	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// ReservationPayload is the JSON body sent on create/update (no id; the
// store assigns identity).
type ReservationPayload struct {
	Local             string `json:"local"`
	Sala              string `json:"sala"`
	DataInicio        string `json:"data_inicio"`
	DataFim           string `json:"data_fim"`
	Responsavel       string `json:"responsavel"`
	Cafe              bool   `json:"cafe"`
	QuantidadePessoas *int   `json:"quantidade_pessoas"`
	Descricao         string `json:"descricao"`
}

// reservationDTO is the JSON shape the store returns for a reservation.
type reservationDTO struct {
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

// mutationResponse is the success envelope for create/update.
type mutationResponse struct {
	Mensagem string         `json:"mensagem"`
	Reserva  reservationDTO `json:"reserva"`
}

// errorResponse is the store's error envelope for non-2xx statuses.
type errorResponse struct {
	Erro string `json:"erro"`
}

// PayloadFromInput converts a normalized reservation into its wire shape.
func PayloadFromInput(input *domain.ReservationInput) *ReservationPayload {
	return &ReservationPayload{
		Local:             input.Local,
		Sala:              input.Sala,
		DataInicio:        input.DataInicio.UTC().Format(time.RFC3339),
		DataFim:           input.DataFim.UTC().Format(time.RFC3339),
		Responsavel:       input.Responsavel,
		Cafe:              input.Cafe,
		QuantidadePessoas: input.QuantidadePessoas,
		Descricao:         input.Descricao,
	}
}

func (d *reservationDTO) toDomain() (*domain.Reservation, error) {
	inicio, err := parseWireTime(d.DataInicio)
	if err != nil {
		return nil, fmt.Errorf("data_inicio: %v", err)
	}
	fim, err := parseWireTime(d.DataFim)
	if err != nil {
		return nil, fmt.Errorf("data_fim: %v", err)
	}

	r := &domain.Reservation{
		ID:                d.ID,
		Local:             d.Local,
		Sala:              d.Sala,
		DataInicio:        inicio,
		DataFim:           fim,
		Responsavel:       d.Responsavel,
		Cafe:              d.Cafe,
		QuantidadePessoas: d.QuantidadePessoas,
		Descricao:         d.Descricao,
	}

	// created_at/updated_at are informational; tolerate their absence.
	if t, err := parseWireTime(d.CreatedAt); err == nil {
		r.CreatedAt = t
	}
	if t, err := parseWireTime(d.UpdatedAt); err == nil {
		r.UpdatedAt = t
	}

	return r, nil
}

// parseWireTime accepts RFC3339 and the zone-less ISO-8601 variant some
// store versions emit; the latter is interpreted as UTC.
func parseWireTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
