package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
	createSchedule "github.com/m04kA/SMC-BookingFront/internal/usecase/create_schedule"
)

const (
	msgNoDateSelected     = "сначала выберите дату"
	msgNoWindows          = "заполните хотя бы одно окно расписания"
	msgInvalidInput       = "некорректные данные расписания"
	msgBackendRejected    = "бэкенд отклонил расписание"
	msgBackendUnavailable = "сервис бронирования недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
// Тело не требуется: расписание собирается из черновика в сессии.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		var rejection *createSchedule.RejectionError

		switch {
		case errors.Is(err, createSchedule.ErrNoDateSelected):
			h.logger.Warn("POST /schedules - No date selected")
			handlers.RespondBadRequest(w, msgNoDateSelected)

		case errors.Is(err, createSchedule.ErrNoWindows):
			h.logger.Warn("POST /schedules - No complete windows in draft")
			handlers.RespondBadRequest(w, msgNoWindows)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.As(err, &rejection):
			// Причина отказа от бэкенда передаётся дословно
			h.logger.Warn("POST /schedules - Rejected by backend: %s", rejection.Reason)
			handlers.RespondError(w, http.StatusConflict, rejection.Reason)

		case errors.Is(err, createSchedule.ErrRejected):
			h.logger.Warn("POST /schedules - Rejected by backend")
			handlers.RespondError(w, http.StatusConflict, msgBackendRejected)

		case errors.Is(err, createSchedule.ErrInternal):
			h.logger.Error("POST /schedules - Backend request failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created successfully: date=%s, day=%s, windows=%d",
		result.DateKey, result.Day, len(result.Windows))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
