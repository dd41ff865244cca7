package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует локальные входные данные. Ошибка здесь
// означает, что запрос к бэкенду не отправлялся.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	return nil
}
