package memory

import (
	"sync"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

// ServiceCollection упорядоченная коллекция услуг в памяти.
// Порядок вставки равен порядку отображения. Коллекция изменяется только
// целиком (ReplaceAll) либо добавлением в конец (Append), поэтому
// параллельные читатели никогда не видят частично изменённое состояние.
type ServiceCollection struct {
	mu    sync.RWMutex
	items []domain.Service
}

// NewServiceCollection создает пустую коллекцию услуг
func NewServiceCollection() *ServiceCollection {
	return &ServiceCollection{items: []domain.Service{}}
}

// ReplaceAll полностью заменяет содержимое коллекции
func (c *ServiceCollection) ReplaceAll(items []domain.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]domain.Service, len(items))
	copy(c.items, items)
}

// Append добавляет услугу в конец коллекции
func (c *ServiceCollection) Append(item domain.Service) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// List возвращает копию содержимого коллекции в порядке вставки
func (c *ServiceCollection) List() []domain.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Service, len(c.items))
	copy(out, c.items)
	return out
}

// Len возвращает число услуг в коллекции
func (c *ServiceCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
