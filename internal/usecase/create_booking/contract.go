package create_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
)

// SessionState интерфейс машины состояний выбора
type SessionState interface {
	Selection() (serviceID, dateKey string)
	SelectedSlot() (domain.Slot, bool)
	CloseModal()
}

// BackendClient интерфейс клиента бэкенда
type BackendClient interface {
	CreateBooking(ctx context.Context, req *backendapi.CreateBookingRequest) (map[string]any, error)
}

// BookingCollection интерфейс коллекции бронирований
type BookingCollection interface {
	Append(item domain.Booking)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
