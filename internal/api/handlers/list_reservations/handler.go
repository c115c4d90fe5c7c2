package list_reservations

import (
	"net/http"

	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
)

const msgListFailed = "Erro ao buscar reservas"

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

// Handle GET /api/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas - Failed to list reservations: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	h.logger.Info("GET /reservas - Returned %d reservation(s)", len(reservations))
	handlers.RespondJSON(w, http.StatusOK, handlers.ReservationsFromDomain(reservations))
}
