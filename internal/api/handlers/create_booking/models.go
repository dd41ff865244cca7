package create_booking

import createBooking "github.com/m04kA/SMC-BookingFront/internal/usecase/create_booking"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Start       string `json:"start"`
	End         string `json:"end"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.Booking.ID,
		ServiceID:   resp.Booking.ServiceID,
		ServiceName: resp.Booking.ServiceName,
		Start:       resp.Booking.StartTime.String(),
		End:         resp.Booking.EndTime.String(),
		ClientName:  resp.Booking.ClientName,
		ClientPhone: resp.Booking.ClientPhone,
	}
}
