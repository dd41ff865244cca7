package backendapi

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backendapi client: internal error")

	// ErrUnavailable возвращается при транспортной ошибке: бэкенд недоступен
	ErrUnavailable = errors.New("backendapi client: backend unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе бэкенда:
	// не-JSON тело, неожиданный статус-код или отсутствующее поле ответа
	ErrInvalidResponse = errors.New("backendapi client: invalid response")

	// ErrRejected возвращается, когда корректно сформированный ответ
	// явно сигнализирует об отказе (ok=false)
	ErrRejected = errors.New("backendapi client: request rejected")
)

// RejectedError отказ бэкенда с причиной, переданной в поле error ответа
type RejectedError struct {
	Reason string
}

// Error возвращает текст ошибки
func (e *RejectedError) Error() string {
	if e.Reason == "" {
		return ErrRejected.Error()
	}
	return fmt.Sprintf("%s: %s", ErrRejected.Error(), e.Reason)
}

// Is сопоставляет отказ с сигнальной ошибкой ErrRejected
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
