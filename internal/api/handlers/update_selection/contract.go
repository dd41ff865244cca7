package update_selection

import (
	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/session"
)

type SessionState interface {
	SelectService(serviceID string)
	SelectDate(dateKey string)
	SelectSlot(slot domain.Slot)
	OpenModal(modal session.Modal) error
	CloseModal()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
