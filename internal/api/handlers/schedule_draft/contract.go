package schedule_draft

import "github.com/m04kA/SMC-BookingFront/internal/domain"

type SessionState interface {
	AddWindow()
	UpdateWindow(index int, window domain.ScheduleWindow) error
	RemoveWindow(index int) error
	Windows() []domain.ScheduleWindow
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
