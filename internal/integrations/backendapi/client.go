package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с booking-бэкендом.
// Все шесть операций — непрозрачные контракты запрос/ответ: клиент проверяет
// только конверт (флаг ok и форму полезной нагрузки), содержимое записей
// передаётся вызывающей стороне сырыми документами.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента бэкенда
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListServices получает список услуг: GET /services
func (c *Client) ListServices(ctx context.Context) ([]map[string]any, error) {
	var resp listResponse
	if err := c.getJSON(ctx, c.baseURL+"/services", &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &RejectedError{Reason: resp.Error}
	}
	if resp.Items == nil {
		return nil, fmt.Errorf("%w: services response carries no items", ErrInvalidResponse)
	}
	return resp.Items, nil
}

// ListTodayBookings получает сегодняшние бронирования: GET /bookings/today
func (c *Client) ListTodayBookings(ctx context.Context) ([]map[string]any, error) {
	var resp listResponse
	if err := c.getJSON(ctx, c.baseURL+"/bookings/today", &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &RejectedError{Reason: resp.Error}
	}
	if resp.Items == nil {
		return nil, fmt.Errorf("%w: bookings response carries no items", ErrInvalidResponse)
	}
	return resp.Items, nil
}

// GetSlots запрашивает доступные слоты для пары (услуга, дата):
// GET /slots?date=&serviceId=
func (c *Client) GetSlots(ctx context.Context, serviceID, dateKey string) ([]SlotPayload, error) {
	query := url.Values{}
	query.Set("date", dateKey)
	query.Set("serviceId", serviceID)

	var resp slotsResponse
	if err := c.getJSON(ctx, c.baseURL+"/slots?"+query.Encode(), &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &RejectedError{Reason: resp.Error}
	}
	// Ответ без последовательности слотов считается некорректным
	if resp.Slots == nil {
		return nil, fmt.Errorf("%w: slots payload is not a sequence", ErrInvalidResponse)
	}
	return resp.Slots, nil
}

// CreateService создает услугу: POST /services.
// Возвращает сырой документ созданной услуги (ключ item либо service).
func (c *Client) CreateService(ctx context.Context, req *CreateServiceRequest) (map[string]any, error) {
	var resp createServiceResponse
	if err := c.postJSON(ctx, c.baseURL+"/services", req, &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &RejectedError{Reason: resp.Error}
	}

	raw := resp.Item
	if raw == nil {
		raw = resp.Service
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: create service response carries no record", ErrInvalidResponse)
	}
	return raw, nil
}

// CreateSchedule публикует расписание на дату: POST /schedules/add
func (c *Client) CreateSchedule(ctx context.Context, req *CreateScheduleRequest) error {
	var resp scheduleResponse
	if err := c.postJSON(ctx, c.baseURL+"/schedules/add", req, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return &RejectedError{Reason: resp.Error}
	}
	return nil
}

// CreateBooking создает бронирование: POST /bookings.
// Возвращает сырой документ созданного бронирования.
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (map[string]any, error) {
	var resp createBookingResponse
	if err := c.postJSON(ctx, c.baseURL+"/bookings", req, &resp); err != nil {
		return nil, err
	}
	if !resp.OK {
		return nil, &RejectedError{Reason: resp.Error}
	}
	if resp.Booking == nil {
		return nil, fmt.Errorf("%w: create booking response carries no record", ErrInvalidResponse)
	}
	return resp.Booking, nil
}

// getJSON выполняет GET-запрос и разбирает JSON-ответ
func (c *Client) getJSON(ctx context.Context, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dst)
}

// postJSON выполняет POST-запрос с JSON-телом и разбирает JSON-ответ
func (c *Client) postJSON(ctx context.Context, rawURL string, body, dst any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, dst)
}

func (c *Client) do(req *http.Request, dst any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Backend request failed: %s %s: %v", req.Method, req.URL.Path, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusConflict:
		// Тело разбираем дальше: конверт сам сигнализирует об отказе
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
