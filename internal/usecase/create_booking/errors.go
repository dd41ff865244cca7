package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных;
	// запрос к бэкенду при этом не отправляется
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrNoSelection возвращается, когда услуга или дата ещё не выбраны
	ErrNoSelection = errors.New("create_booking: service and date must be selected")

	// ErrNoSlotSelected возвращается, когда слот для бронирования не выбран
	ErrNoSlotSelected = errors.New("create_booking: no slot selected")

	// ErrRejected возвращается, когда бэкенд явно отклонил бронирование
	ErrRejected = errors.New("create_booking: rejected by backend")

	// ErrInternal возвращается при транспортных и прочих внутренних ошибках
	ErrInternal = errors.New("create_booking: internal error")
)

// RejectionError отказ бэкенда с дословной причиной
type RejectionError struct {
	Reason string
}

// Error возвращает текст ошибки
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected.Error(), e.Reason)
}

// Unwrap сопоставляет отказ с сигнальной ошибкой ErrRejected
func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
