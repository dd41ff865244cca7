package get_state

import (
	"net/http"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
)

type Handler struct {
	session SessionReader
	catalog CatalogService
	logger  Logger
}

func NewHandler(session SessionReader, catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		session: session,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/state
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snap := h.session.Snapshot()
	response := FromState(snap, h.catalog.ListServices(), h.catalog.ListTodayBookings())

	handlers.RespondJSON(w, http.StatusOK, response)
}
