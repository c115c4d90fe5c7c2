package list_salas

import (
	"net/http"

	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
)

const msgListFailed = "Erro ao buscar salas"

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

// Handle GET /api/salas?local=X
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var local *string
	if v := r.URL.Query().Get("local"); v != "" {
		local = &v
	}

	salas, err := h.service.Salas(r.Context(), local)
	if err != nil {
		h.logger.Error("GET /salas - Failed to list salas: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, salas)
}
