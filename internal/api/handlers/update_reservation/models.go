package update_reservation

import (
	"errors"

	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
	"github.com/bananaltda/BRS-ReservationService/internal/service/reservations"
)

var (
	errInvalidDataInicio = errors.New("invalid data_inicio")
	errInvalidDataFim    = errors.New("invalid data_fim")
)

// UpdateReservationRequest is the PUT /reservas/{id} body. Absent fields
// keep their stored values.
type UpdateReservationRequest struct {
	Local             *string `json:"local"`
	Sala              *string `json:"sala"`
	DataInicio        *string `json:"data_inicio"`
	DataFim           *string `json:"data_fim"`
	Responsavel       *string `json:"responsavel"`
	Cafe              *bool   `json:"cafe"`
	QuantidadePessoas *int    `json:"quantidade_pessoas"`
	Descricao         *string `json:"descricao"`
}

// UpdateReservationResponse is the 200 envelope.
type UpdateReservationResponse struct {
	Mensagem string                        `json:"mensagem"`
	Reserva  *handlers.ReservationResponse `json:"reserva"`
}

// ToServiceRequest parses the wire timestamps and builds the partial update.
func (r *UpdateReservationRequest) ToServiceRequest() (*reservations.UpdateRequest, error) {
	req := &reservations.UpdateRequest{
		Local:             r.Local,
		Sala:              r.Sala,
		Responsavel:       r.Responsavel,
		Cafe:              r.Cafe,
		QuantidadePessoas: r.QuantidadePessoas,
		Descricao:         r.Descricao,
	}

	if r.DataInicio != nil {
		t, err := handlers.ParseWireTime(*r.DataInicio)
		if err != nil {
			return nil, errInvalidDataInicio
		}
		req.DataInicio = &t
	}
	if r.DataFim != nil {
		t, err := handlers.ParseWireTime(*r.DataFim)
		if err != nil {
			return nil, errInvalidDataFim
		}
		req.DataFim = &t
	}

	return req, nil
}
