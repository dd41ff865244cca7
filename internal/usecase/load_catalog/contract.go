package load_catalog

import (
	"context"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	ListServices(ctx context.Context) ([]map[string]any, error)
	ListTodayBookings(ctx context.Context) ([]map[string]any, error)
}

// ServiceCollection интерфейс коллекции услуг
type ServiceCollection interface {
	ReplaceAll(items []domain.Service)
}

// BookingCollection интерфейс коллекции бронирований
type BookingCollection interface {
	ReplaceAll(items []domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
