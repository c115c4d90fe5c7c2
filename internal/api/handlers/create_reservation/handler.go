package create_reservation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
	"github.com/bananaltda/BRS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "Corpo da requisição inválido"
	msgCampoObrigatorio   = "Campo obrigatório: %s"
	msgDataInvalida       = "Formato de data inválido. Use ISO 8601 (YYYY-MM-DDTHH:MM:SS)"
	msgHorarioInvalido    = "A data/hora de início deve ser anterior à data/hora de fim"
	msgCafeSemQuantidade  = "Quando café é solicitado, a quantidade de pessoas é obrigatória"
	msgCriadaComSucesso   = "Reserva criada com sucesso"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if field := req.MissingField(); field != "" {
		h.logger.Warn("POST /reservas - Missing required field: %s", field)
		handlers.RespondBadRequest(w, fmt.Sprintf(msgCampoObrigatorio, field))
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.logger.Warn("POST /reservas - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgDataInvalida)
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservas - Invalid time range: local=%q sala=%q", req.Local, req.Sala)
			handlers.RespondBadRequest(w, msgHorarioInvalido)

		case errors.Is(err, reservations.ErrQuantidadeRequired):
			h.logger.Warn("POST /reservas - Cafe without headcount: local=%q sala=%q", req.Local, req.Sala)
			handlers.RespondBadRequest(w, msgCafeSemQuantidade)

		default:
			h.logger.Error("POST /reservas - Failed to create reservation: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas - Reservation created: id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateReservationResponse{
		Mensagem: msgCriadaComSucesso,
		Reserva:  handlers.ReservationFromDomain(created),
	})
}
