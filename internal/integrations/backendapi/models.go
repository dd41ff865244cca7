package backendapi

// SlotPayload слот из ответа эндпоинта доступности.
// Времена передаются дальше в том виде, в котором их вернул бэкенд.
type SlotPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleWindowPayload окно расписания в запросе на публикацию
type ScheduleWindowPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name     string `json:"name"`
	Duration int    `json:"duration"`
	Price    int    `json:"price"`
}

// CreateScheduleRequest запрос на публикацию расписания на дату
type CreateScheduleRequest struct {
	Date    string                  `json:"date"`
	Day     string                  `json:"day"`
	Windows []ScheduleWindowPayload `json:"windows"`
}

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	ServiceID   string `json:"serviceId"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// listResponse конверт ответа списочных эндпоинтов.
// Элементы остаются сырыми документами и нормализуются вызывающей стороной.
type listResponse struct {
	OK    bool             `json:"ok"`
	Items []map[string]any `json:"items"`
	Error string           `json:"error"`
}

// createServiceResponse конверт ответа на создание услуги.
// Бэкенд возвращает созданную запись под ключом item либо service.
type createServiceResponse struct {
	OK      bool           `json:"ok"`
	Item    map[string]any `json:"item"`
	Service map[string]any `json:"service"`
	Error   string         `json:"error"`
}

// scheduleResponse конверт ответа на публикацию расписания
type scheduleResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// slotsResponse конверт ответа эндпоинта доступности
type slotsResponse struct {
	OK    bool          `json:"ok"`
	Slots []SlotPayload `json:"slots"`
	Error string        `json:"error"`
}

// createBookingResponse конверт ответа на создание бронирования
type createBookingResponse struct {
	OK      bool           `json:"ok"`
	Booking map[string]any `json:"booking"`
	Error   string         `json:"error"`
}
