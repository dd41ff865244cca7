package refresh_slots

import getSlots "github.com/m04kA/SMC-BookingFront/internal/usecase/get_slots"

// SlotsResponse HTTP response model
type SlotsResponse struct {
	ServiceID string     `json:"serviceId"`
	Date      string     `json:"date"`
	Slots     []SlotView `json:"slots"`
}

// SlotView модель слота
type SlotView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.DateKey,
		Slots:     make([]SlotView, len(resp.Slots)),
	}
	for i, s := range resp.Slots {
		out.Slots[i] = SlotView{Start: s.Start, End: s.End}
	}
	return out
}
