package delete_reservation

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
	msgReservaNaoEncontrada = "Reserva não encontrada"
	msgExcluidaComSucesso   = "Reserva excluída com sucesso"
)

// DeleteReservationResponse is the 200 envelope.
type DeleteReservationResponse struct {
	Mensagem string `json:"mensagem"`
}

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

// Handle DELETE /api/reservas/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservas/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservas/{id} - Reservation not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservaNaoEncontrada)

		default:
			h.logger.Error("DELETE /reservas/{id} - Failed to delete reservation: id=%d, %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservas/{id} - Reservation deleted: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteReservationResponse{
		Mensagem: msgExcluidaComSucesso,
	})
}
