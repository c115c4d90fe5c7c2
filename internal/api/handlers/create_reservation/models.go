package create_reservation

import (
	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
	"github.com/bananaltda/BRS-ReservationService/internal/domain"
)

// CreateReservationRequest is the POST /reservas body.
type CreateReservationRequest struct {
	Local             string `json:"local"`
	Sala              string `json:"sala"`
	DataInicio        string `json:"data_inicio"`
	DataFim           string `json:"data_fim"`
	Responsavel       string `json:"responsavel"`
	Cafe              bool   `json:"cafe"`
	QuantidadePessoas *int   `json:"quantidade_pessoas"`
	Descricao         string `json:"descricao"`
}

// CreateReservationResponse is the 201 envelope.
type CreateReservationResponse struct {
	Mensagem string                        `json:"mensagem"`
	Reserva  *handlers.ReservationResponse `json:"reserva"`
}

// MissingField returns the wire name of the first absent required field, or
// "" when all are present. Only the first missing field is reported.
func (r *CreateReservationRequest) MissingField() string {
	switch {
	case r.Local == "":
		return "local"
	case r.Sala == "":
		return "sala"
	case r.DataInicio == "":
		return "data_inicio"
	case r.DataFim == "":
		return "data_fim"
	case r.Responsavel == "":
		return "responsavel"
	}
	return ""
}

// ToInput parses the wire timestamps and builds the service input.
func (r *CreateReservationRequest) ToInput() (*domain.ReservationInput, error) {
	inicio, err := handlers.ParseWireTime(r.DataInicio)
	if err != nil {
		return nil, err
	}
	fim, err := handlers.ParseWireTime(r.DataFim)
	if err != nil {
		return nil, err
	}

	return &domain.ReservationInput{
		Local:             r.Local,
		Sala:              r.Sala,
		DataInicio:        inicio,
		DataFim:           fim,
		Responsavel:       r.Responsavel,
		Cafe:              r.Cafe,
		QuantidadePessoas: r.QuantidadePessoas,
		Descricao:         r.Descricao,
	}, nil
}
