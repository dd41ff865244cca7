package create_service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных;
	// запрос к бэкенду при этом не отправляется
	ErrInvalidInput = errors.New("create_service: invalid input data")

	// ErrRejected возвращается, когда бэкенд явно отклонил создание услуги
	ErrRejected = errors.New("create_service: rejected by backend")

	// ErrInternal возвращается при транспортных и прочих внутренних ошибках
	ErrInternal = errors.New("create_service: internal error")
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
