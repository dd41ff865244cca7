package create_schedule

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// Response итог публикации расписания
type Response struct {
	DateKey string                  // дата расписания
	Day     string                  // производный день недели
	Windows []domain.ScheduleWindow // отправленные окна, без незаполненных
}
