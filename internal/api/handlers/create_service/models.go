package create_service

import (
	"encoding/json"
	"strconv"

	createService "github.com/m04kA/SMC-BookingFront/internal/usecase/create_service"
)

// CreateServiceRequest HTTP request model.
// Числовые поля принимаются и числом, и строкой формы: пустое значение
// сводится к нулю.
type CreateServiceRequest struct {
	Name     string      `json:"name"`
	Duration json.Number `json:"duration"`
	Price    json.Number `json:"price"`
}

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateServiceRequest) ToUseCaseRequest() (*createService.Request, error) {
	duration, err := coerceNumber(r.Duration)
	if err != nil {
		return nil, err
	}
	price, err := coerceNumber(r.Price)
	if err != nil {
		return nil, err
	}

	return &createService.Request{
		Name:            r.Name,
		DurationMinutes: duration,
		Price:           price,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createService.Response) *ServiceResponse {
	return &ServiceResponse{
		ID:              resp.Service.ID,
		Name:            resp.Service.Name,
		DurationMinutes: resp.Service.DurationMinutes,
		Price:           resp.Service.Price,
	}
}

func coerceNumber(n json.Number) (int, error) {
	if n.String() == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
