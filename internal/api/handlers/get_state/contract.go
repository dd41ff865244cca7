package get_state

import (
	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/session"
)

type SessionReader interface {
	Snapshot() session.Snapshot
}

type CatalogService interface {
	ListServices() []domain.Service
	ListTodayBookings() []domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
