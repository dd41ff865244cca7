package create_schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDateSelected возвращается, когда дата для расписания ещё не выбрана
	ErrNoDateSelected = errors.New("create_schedule: date must be selected")

	// ErrNoWindows возвращается, когда после отбрасывания незаполненных окон
	// в черновике не осталось ни одного окна
	ErrNoWindows = errors.New("create_schedule: at least one complete window is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrRejected возвращается, когда бэкенд явно отклонил расписание
	ErrRejected = errors.New("create_schedule: rejected by backend")

	// ErrInternal возвращается при транспортных и прочих внутренних ошибках
	ErrInternal = errors.New("create_schedule: internal error")
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
