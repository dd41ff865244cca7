package get_slots

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// Response итог запроса доступности
type Response struct {
	ServiceID string        // услуга, для которой выполнялся запрос
	DateKey   string        // дата, для которой выполнялся запрос
	Slots     []domain.Slot // новый авторитетный список слотов
}
