package catalog

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// ServiceCollection интерфейс коллекции услуг
type ServiceCollection interface {
	List() []domain.Service
}

// BookingCollection интерфейс коллекции бронирований
type BookingCollection interface {
	List() []domain.Booking
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
