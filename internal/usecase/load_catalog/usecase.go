package load_catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/normalize"
)

// UseCase use case начальной загрузки каталога: услуги и сегодняшние
// бронирования. Каждая запись нормализуется, коллекции заменяются целиком.
type UseCase struct {
	client   BackendClient
	services ServiceCollection
	bookings BookingCollection
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client BackendClient,
	services ServiceCollection,
	bookings BookingCollection,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:   client,
		services: services,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute загружает обе коллекции. Неудачная загрузка одной коллекции не
// мешает другой: успешные данные применяются, итоговая ошибка сообщает о
// частичном результате.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	resp := &Response{}
	var failed []string

	// 1. Услуги
	rawServices, err := uc.client.ListServices(ctx)
	if err != nil {
		uc.logger.Error("LoadCatalog: failed to load services: %v", err)
		failed = append(failed, "services")
	} else {
		services := make([]domain.Service, 0, len(rawServices))
		for _, raw := range rawServices {
			services = append(services, normalize.Service(raw))
		}
		uc.services.ReplaceAll(services)
		resp.Services = len(services)
		uc.logger.Info("LoadCatalog: loaded %d services", len(services))
	}

	// 2. Сегодняшние бронирования
	rawBookings, err := uc.client.ListTodayBookings(ctx)
	if err != nil {
		uc.logger.Error("LoadCatalog: failed to load today's bookings: %v", err)
		failed = append(failed, "bookings")
	} else {
		bookings := make([]domain.Booking, 0, len(rawBookings))
		for _, raw := range rawBookings {
			bookings = append(bookings, normalize.Booking(raw))
		}
		uc.bookings.ReplaceAll(bookings)
		resp.Bookings = len(bookings)
		uc.logger.Info("LoadCatalog: loaded %d bookings for today", len(bookings))
	}

	if len(failed) > 0 {
		return resp, fmt.Errorf("%w: %v", ErrPartialLoad, failed)
	}
	return resp, nil
}
