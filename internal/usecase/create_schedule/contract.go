package create_schedule

import (
	"context"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
)

// SessionState интерфейс машины состояний выбора
type SessionState interface {
	Selection() (serviceID, dateKey string)
	CompleteWindows() []domain.ScheduleWindow
	CloseModal()
	ResetWindows()
}

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	CreateSchedule(ctx context.Context, req *backendapi.CreateScheduleRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
