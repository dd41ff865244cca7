package normalize

import (
	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/pkg/types"
)

// Service приводит сырой документ услуги к каноничному виду.
// Функция тотальна: при отсутствующих или искажённых полях подставляются
// значения по умолчанию, ошибок не бывает. Повторная нормализация уже
// каноничного документа даёт тот же результат.
func Service(raw map[string]any) domain.Service {
	return domain.Service{
		ID:              extractID(raw),
		Name:            extractString(raw, "name"),
		DurationMinutes: extractNumber(raw, "duration"),
		Price:           extractNumber(raw, "price"),
	}
}

// Booking приводит сырой документ бронирования к каноничному виду.
// Название услуги денормализовано на бэкенде; при его отсутствии
// подставляется плейсхолдер domain.UnknownServiceName.
func Booking(raw map[string]any) domain.Booking {
	serviceName := extractString(raw, "serviceName")
	if serviceName == "" {
		serviceName = domain.UnknownServiceName
	}

	return domain.Booking{
		ID:          extractID(raw),
		ServiceID:   extractRef(raw, "serviceId"),
		ServiceName: serviceName,
		StartTime:   types.TimeString(extractString(raw, "start")),
		EndTime:     types.TimeString(extractString(raw, "end")),
		ClientName:  extractString(raw, "clientName"),
		ClientPhone: extractString(raw, "clientPhone"),
	}
}
