package create_service

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// Request модель запроса на создание услуги
type Request struct {
	Name            string // название услуги, обязательно
	DurationMinutes int    // длительность в минутах
	Price           int    // цена в валютных единицах
}

// Response модель ответа с созданной услугой в каноничном виде
type Response struct {
	Service domain.Service
}
