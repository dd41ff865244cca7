package update_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoSlotSelected     = "сначала выберите слот"
	msgUnknownModal       = "неизвестное модальное окно"
)

type Handler struct {
	session SessionState
	logger  Logger
}

func NewHandler(session SessionState, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// Handle PUT /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Date != nil {
		if _, err := time.Parse(domain.DateFormat, *req.Date); err != nil {
			h.logger.Warn("PUT /selection - Invalid date %q: %v", *req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	// Применяем переходы в фиксированном порядке: услуга, дата, слот, окно.
	// Выбор слота до запроса на открытие окна бронирования позволяет сделать
	// обе операции одним запросом.
	if req.ServiceID != nil {
		h.session.SelectService(*req.ServiceID)
	}
	if req.Date != nil {
		h.session.SelectDate(*req.Date)
	}
	if req.Slot != nil {
		h.session.SelectSlot(domain.Slot{Start: req.Slot.Start, End: req.Slot.End})
	}

	if req.Modal != nil {
		modal := session.Modal(*req.Modal)
		if modal == session.ModalNone {
			h.session.CloseModal()
		} else if err := h.session.OpenModal(modal); err != nil {
			switch {
			case errors.Is(err, session.ErrNoSlotSelected):
				h.logger.Warn("PUT /selection - Cannot open booking modal without a slot")
				handlers.RespondError(w, http.StatusConflict, msgNoSlotSelected)
			case errors.Is(err, session.ErrUnknownModal):
				h.logger.Warn("PUT /selection - Unknown modal %q", *req.Modal)
				handlers.RespondBadRequest(w, msgUnknownModal)
			default:
				h.logger.Error("PUT /selection - Failed to open modal %q: %v", *req.Modal, err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	h.logger.Info("PUT /selection - Selection updated")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
