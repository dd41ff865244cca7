package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
	createService "github.com/m04kA/SMC-BookingFront/internal/usecase/create_service"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "укажите название услуги, длительность и цену"
	msgBackendRejected    = "бэкенд отклонил создание услуги"
	msgBackendUnavailable = "сервис бронирования недоступен, попробуйте позже"
)

type Handler struct {
	useCase CreateServiceUseCase
	logger  Logger
}

func NewHandler(useCase CreateServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /services - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createService.RejectionError

		switch {
		case errors.Is(err, createService.ErrInvalidInput):
			h.logger.Warn("POST /services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.As(err, &rejection):
			h.logger.Warn("POST /services - Rejected by backend: %s", rejection.Reason)
			handlers.RespondError(w, http.StatusConflict, rejection.Reason)

		case errors.Is(err, createService.ErrRejected):
			h.logger.Warn("POST /services - Rejected by backend")
			handlers.RespondError(w, http.StatusConflict, msgBackendRejected)

		case errors.Is(err, createService.ErrInternal):
			h.logger.Error("POST /services - Backend request failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%s", result.Service.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
