package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
	"github.com/m04kA/SMC-BookingFront/internal/normalize"
	"github.com/m04kA/SMC-BookingFront/pkg/types"
)

// UseCase use case создания бронирования клиентом.
// Локальная валидация полностью предшествует сетевому запросу; коллекция
// бронирований изменяется строго после успешного ответа.
type UseCase struct {
	session  SessionState
	client   BackendClient
	bookings BookingCollection
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	session SessionState,
	client BackendClient,
	bookings BookingCollection,
	logger Logger,
) *UseCase {
	return &UseCase{
		session:  session,
		client:   client,
		bookings: bookings,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация контактных данных, до сети
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга, дата и слот обязаны быть выбраны
	serviceID, dateKey := uc.session.Selection()
	if serviceID == "" || dateKey == "" {
		uc.logger.Warn("CreateBooking: selection incomplete: service=%q, date=%q", serviceID, dateKey)
		return nil, ErrNoSelection
	}

	slot, ok := uc.session.SelectedSlot()
	if !ok {
		uc.logger.Warn("CreateBooking: no slot selected for service=%s, date=%s", serviceID, dateKey)
		return nil, ErrNoSlotSelected
	}

	// 3. Нормализуем время начала слота к двухзначным компонентам
	start, err := types.NewTimeStringFromString(slot.Start)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot start %q is not a valid time: %v", slot.Start, err)
		return nil, fmt.Errorf("%w: invalid slot start time: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("CreateBooking: service=%s, date=%s, start=%s, client=%q",
		serviceID, dateKey, start, req.ClientName)

	// 4. Отправляем запрос на бэкенд
	raw, err := uc.client.CreateBooking(ctx, &backendapi.CreateBookingRequest{
		ServiceID:   serviceID,
		Date:        dateKey,
		Start:       start.String(),
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		var rejected *backendapi.RejectedError
		if errors.As(err, &rejected) {
			uc.logger.Warn("CreateBooking: rejected by backend: %v", err)
			if rejected.Reason != "" {
				return nil, &RejectionError{Reason: rejected.Reason}
			}
			return nil, ErrRejected
		}
		uc.logger.Error("CreateBooking: request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Нормализуем созданную запись и добавляем в коллекцию
	booking := normalize.Booking(raw)
	uc.bookings.Append(booking)

	// 6. Закрываем форму бронирования
	uc.session.CloseModal()

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)
	return &Response{Booking: booking}, nil
}
