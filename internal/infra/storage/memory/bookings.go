package memory

import (
	"sync"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

// BookingCollection упорядоченная коллекция сегодняшних бронирований в памяти.
// Порядок добавления равен порядку загрузки и создания. Записи никогда
// не изменяются после добавления.
type BookingCollection struct {
	mu    sync.RWMutex
	items []domain.Booking
}

// NewBookingCollection создает пустую коллекцию бронирований
func NewBookingCollection() *BookingCollection {
	return &BookingCollection{items: []domain.Booking{}}
}

// ReplaceAll полностью заменяет содержимое коллекции
func (c *BookingCollection) ReplaceAll(items []domain.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]domain.Booking, len(items))
	copy(c.items, items)
}

// Append добавляет бронирование в конец коллекции
func (c *BookingCollection) Append(item domain.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// List возвращает копию содержимого коллекции в порядке добавления
func (c *BookingCollection) List() []domain.Booking {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Booking, len(c.items))
	copy(out, c.items)
	return out
}

// Len возвращает число бронирований в коллекции
func (c *BookingCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
