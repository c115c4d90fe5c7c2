package list_locais

import (
	"net/http"

	"github.com/bananaltda/BRS-ReservationService/internal/api/handlers"
)

const msgListFailed = "Erro ao buscar locais"

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

// Handle GET /api/locais
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locais, err := h.service.Locais(r.Context())
	if err != nil {
		h.logger.Error("GET /locais - Failed to list locais: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, locais)
}
