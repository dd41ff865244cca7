package get_state

import (
	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/session"
)

// StateResponse HTTP response model
type StateResponse struct {
	SelectedService string            `json:"selectedService"`
	SelectedDate    string            `json:"selectedDate"`
	Modal           string            `json:"modal"`
	Slots           []SlotView        `json:"slots"`
	SelectedSlot    *SlotView         `json:"selectedSlot,omitempty"`
	ScheduleWindows []WindowView      `json:"scheduleWindows"`
	Services        []ServiceView     `json:"services"`
	TodayBookings   []BookingView     `json:"todayBookings"`
}

// SlotView модель слота
type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WindowView модель окна черновика расписания
type WindowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// ServiceView модель услуги
type ServiceView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int    `json:"price"`
}

// BookingView модель бронирования
type BookingView struct {
	ID          string `json:"id"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Start       string `json:"start"`
	End         string `json:"end"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
}

// FromState собирает ответ из снимка сессии и коллекций каталога
func FromState(snap session.Snapshot, services []domain.Service, bookings []domain.Booking) *StateResponse {
	resp := &StateResponse{
		SelectedService: snap.SelectedService,
		SelectedDate:    snap.SelectedDate,
		Modal:           string(snap.Modal),
		Slots:           make([]SlotView, len(snap.Slots)),
		ScheduleWindows: make([]WindowView, len(snap.Windows)),
		Services:        make([]ServiceView, len(services)),
		TodayBookings:   make([]BookingView, len(bookings)),
	}

	for i, s := range snap.Slots {
		resp.Slots[i] = SlotView{Start: s.Start, End: s.End}
	}
	if snap.SelectedSlot != nil {
		resp.SelectedSlot = &SlotView{Start: snap.SelectedSlot.Start, End: snap.SelectedSlot.End}
	}
	for i, w := range snap.Windows {
		resp.ScheduleWindows[i] = WindowView{Start: w.Start, End: w.End, Note: string(w.Note)}
	}
	for i, s := range services {
		resp.Services[i] = ServiceView{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}
	for i, b := range bookings {
		resp.TodayBookings[i] = BookingView{
			ID:          b.ID,
			ServiceID:   b.ServiceID,
			ServiceName: b.ServiceName,
			Start:       b.StartTime.String(),
			End:         b.EndTime.String(),
			ClientName:  b.ClientName,
			ClientPhone: b.ClientPhone,
		}
	}
	return resp
}
