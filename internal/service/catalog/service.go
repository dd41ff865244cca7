package catalog

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// Service сервис чтения каталога: услуги и сегодняшние бронирования.
// Отдаёт копии коллекций в порядке вставки.
type Service struct {
	services ServiceCollection
	bookings BookingCollection
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(services ServiceCollection, bookings BookingCollection, logger Logger) *Service {
	return &Service{
		services: services,
		bookings: bookings,
		logger:   logger,
	}
}

// ListServices возвращает все услуги в порядке отображения
func (s *Service) ListServices() []domain.Service {
	return s.services.List()
}

// ListTodayBookings возвращает сегодняшние бронирования в порядке добавления
func (s *Service) ListTodayBookings() []domain.Booking {
	return s.bookings.List()
}
