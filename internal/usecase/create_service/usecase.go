package create_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
	"github.com/m04kA/SMC-BookingFront/internal/normalize"
)

// UseCase use case создания услуги оператором.
// При успехе возвращённая бэкендом запись нормализуется и добавляется в
// конец коллекции услуг, форма закрывается. При любой неудаче локальные
// коллекции не изменяются.
type UseCase struct {
	session  SessionState
	client   BackendClient
	services ServiceCollection
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	session SessionState,
	client BackendClient,
	services ServiceCollection,
	logger Logger,
) *UseCase {
	return &UseCase{
		session:  session,
		client:   client,
		services: services,
		logger:   logger,
	}
}

// Execute выполняет use case создания услуги
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateService: name=%q, duration=%d, price=%d",
		req.Name, req.DurationMinutes, req.Price)

	// 1. Валидация входных данных, до сети
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	// 2. Отправляем запрос на бэкенд
	raw, err := uc.client.CreateService(ctx, &backendapi.CreateServiceRequest{
		Name:     req.Name,
		Duration: req.DurationMinutes,
		Price:    req.Price,
	})
	if err != nil {
		var rejected *backendapi.RejectedError
		if errors.As(err, &rejected) {
			uc.logger.Warn("CreateService: rejected by backend: %v", err)
			if rejected.Reason != "" {
				return nil, &RejectionError{Reason: rejected.Reason}
			}
			return nil, ErrRejected
		}
		uc.logger.Error("CreateService: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Нормализуем созданную запись и добавляем в коллекцию
	service := normalize.Service(raw)
	uc.services.Append(service)

	// 4. Закрываем форму создания
	uc.session.CloseModal()

	uc.logger.Info("CreateService: successfully created service id=%s", service.ID)
	return &Response{Service: service}, nil
}
