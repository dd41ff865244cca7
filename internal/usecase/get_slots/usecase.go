package get_slots

import (
	"context"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

// UseCase use case запроса доступных слотов для выбранной пары (услуга, дата).
//
// Список слотов в сессии всегда заменяется целиком: результатом запроса при
// успехе, пустым списком при любой ошибке или некорректном ответе. Запросы
// не отменяются и не нумеруются: авторитетным становится результат
// последнего завершившегося запроса, в каком бы порядке запросы ни
// стартовали.
type UseCase struct {
	session SessionState
	client  BackendClient
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(session SessionState, client BackendClient, logger Logger) *UseCase {
	return &UseCase{
		session: session,
		client:  client,
		logger:  logger,
	}
}

// Execute выполняет запрос доступности и публикует результат в сессию
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Читаем текущий выбор; обе части обязательны
	serviceID, dateKey := uc.session.Selection()
	if serviceID == "" || dateKey == "" {
		uc.logger.Warn("GetSlots: selection incomplete: service=%q, date=%q", serviceID, dateKey)
		return nil, ErrNoSelection
	}

	uc.logger.Info("GetSlots: querying availability for service=%s, date=%s", serviceID, dateKey)

	// 2. Запрашиваем слоты; любая ошибка сводится к пустому списку
	payload, err := uc.client.GetSlots(ctx, serviceID, dateKey)
	if err != nil {
		uc.logger.Warn("GetSlots: query failed for service=%s, date=%s: %v", serviceID, dateKey, err)
		empty := []domain.Slot{}
		uc.session.ReplaceSlots(empty)
		return &Response{ServiceID: serviceID, DateKey: dateKey, Slots: empty}, nil
	}

	// 3. Публикуем новый список атомарно, без слияния со старым
	slots := make([]domain.Slot, 0, len(payload))
	for _, p := range payload {
		slots = append(slots, domain.Slot{Start: p.Start, End: p.End})
	}
	uc.session.ReplaceSlots(slots)

	uc.logger.Info("GetSlots: published %d slots for service=%s, date=%s", len(slots), serviceID, dateKey)
	return &Response{ServiceID: serviceID, DateKey: dateKey, Slots: slots}, nil
}
