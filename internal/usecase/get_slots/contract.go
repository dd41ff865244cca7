package get_slots

import (
	"context"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
)

// SessionState интерфейс машины состояний выбора
type SessionState interface {
	Selection() (serviceID, dateKey string)
	ReplaceSlots(slots []domain.Slot)
}

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	GetSlots(ctx context.Context, serviceID, dateKey string) ([]backendapi.SlotPayload, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
