package refresh_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
	getSlots "github.com/m04kA/SMC-BookingFront/internal/usecase/get_slots"
)

const msgNoSelection = "сначала выберите услугу и дату"

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrNoSelection):
			h.logger.Warn("POST /slots/refresh - Selection incomplete")
			handlers.RespondBadRequest(w, msgNoSelection)
		default:
			h.logger.Error("POST /slots/refresh - Failed to refresh slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/refresh - Slots refreshed: service_id=%s, date=%s, slots_count=%d",
		result.ServiceID, result.DateKey, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
