package create_schedule

import createSchedule "github.com/m04kA/SMC-BookingFront/internal/usecase/create_schedule"

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Date    string       `json:"date"`
	Day     string       `json:"day"`
	Windows []WindowView `json:"windows"`
}

// WindowView модель отправленного окна расписания
type WindowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Date:    resp.DateKey,
		Day:     resp.Day,
		Windows: make([]WindowView, len(resp.Windows)),
	}
	for i, w := range resp.Windows {
		out.Windows[i] = WindowView{Start: w.Start, End: w.End, Note: string(w.Note)}
	}
	return out
}
