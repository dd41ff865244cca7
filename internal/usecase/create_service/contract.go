package create_service

import (
	"context"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
)

// SessionState интерфейс машины состояний выбора
type SessionState interface {
	CloseModal()
}

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	CreateService(ctx context.Context, req *backendapi.CreateServiceRequest) (map[string]any, error)
}

// ServiceCollection интерфейс коллекции услуг
type ServiceCollection interface {
	Append(item domain.Service)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
