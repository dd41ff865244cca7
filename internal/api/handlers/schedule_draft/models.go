package schedule_draft

import "github.com/m04kA/SMC-BookingFront/internal/domain"

// UpdateWindowRequest HTTP request model
type UpdateWindowRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// DraftResponse HTTP response model: текущий черновик целиком
type DraftResponse struct {
	Windows []WindowView `json:"windows"`
}

// WindowView модель окна черновика
type WindowView struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note"`
}

// FromWindows собирает ответ из окон черновика
func FromWindows(windows []domain.ScheduleWindow) *DraftResponse {
	resp := &DraftResponse{Windows: make([]WindowView, len(windows))}
	for i, w := range windows {
		resp.Windows[i] = WindowView{Start: w.Start, End: w.End, Note: string(w.Note)}
	}
	return resp
}
