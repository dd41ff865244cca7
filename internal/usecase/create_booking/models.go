package create_booking

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// Request модель запроса на создание бронирования.
// Услуга, дата и слот берутся из текущего состояния выбора.
type Request struct {
	ClientName  string // имя клиента, обязательно
	ClientPhone string // телефон клиента, обязательно
}

// Response модель ответа с созданным бронированием в каноничном виде
type Response struct {
	Booking domain.Booking
}
