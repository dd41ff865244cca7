package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BookingFront/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите имя и телефон клиента"
	msgNoSelection        = "сначала выберите услугу и дату"
	msgNoSlotSelected     = "сначала выберите слот"
	msgBackendRejected    = "бэкенд отклонил бронирование"
	msgBackendUnavailable = "сервис бронирования недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var rejection *createBooking.RejectionError

		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrNoSelection):
			h.logger.Warn("POST /bookings - Selection incomplete")
			handlers.RespondError(w, http.StatusConflict, msgNoSelection)

		case errors.Is(err, createBooking.ErrNoSlotSelected):
			h.logger.Warn("POST /bookings - No slot selected")
			handlers.RespondError(w, http.StatusConflict, msgNoSlotSelected)

		case errors.As(err, &rejection):
			// Причина отказа от бэкенда передаётся дословно
			h.logger.Warn("POST /bookings - Rejected by backend: %s", rejection.Reason)
			handlers.RespondError(w, http.StatusConflict, rejection.Reason)

		case errors.Is(err, createBooking.ErrRejected):
			h.logger.Warn("POST /bookings - Rejected by backend")
			handlers.RespondError(w, http.StatusConflict, msgBackendRejected)

		case errors.Is(err, createBooking.ErrInternal):
			h.logger.Error("POST /bookings - Backend request failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s", result.Booking.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
