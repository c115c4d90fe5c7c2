package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
	"github.com/bananaltda/BRS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID            = "ID de reserva inválido"
	msgInvalidRequestBody   = "Corpo da requisição inválido"
	msgDataInicioInvalida   = "Formato de data_inicio inválido"
	msgDataFimInvalida      = "Formato de data_fim inválido"
	msgHorarioInvalido      = "A data/hora de início deve ser anterior à data/hora de fim"
	msgCafeSemQuantidade    = "Quando café é solicitado, a quantidade de pessoas é obrigatória"
	msgReservaNaoEncontrada = "Reserva não encontrada"
	msgAtualizadaComSucesso = "Reserva atualizada com sucesso"
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

// Handle PUT /api/reservas/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservas/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservas/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /reservas/{id} - Failed to parse timestamps: id=%d, %v", id, err)
		switch {
		case errors.Is(err, errInvalidDataInicio):
			handlers.RespondBadRequest(w, msgDataInicioInvalida)
		default:
			handlers.RespondBadRequest(w, msgDataFimInvalida)
		}
		return
	}

	updated, err := h.service.Update(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservas/{id} - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservaNaoEncontrada)

		case errors.Is(err, reservations.ErrInvalidTimeRange):
			h.logger.Warn("PUT /reservas/{id} - Invalid time range: id=%d", id)
			handlers.RespondBadRequest(w, msgHorarioInvalido)

		case errors.Is(err, reservations.ErrQuantidadeRequired):
			h.logger.Warn("PUT /reservas/{id} - Cafe without headcount: id=%d", id)
			handlers.RespondBadRequest(w, msgCafeSemQuantidade)

		default:
			h.logger.Error("PUT /reservas/{id} - Failed to update reservation: id=%d, %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id} - Reservation updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, UpdateReservationResponse{
		Mensagem: msgAtualizadaComSucesso,
		Reserva:  handlers.ReservationFromDomain(updated),
	})
}
