package update_selection

// UpdateSelectionRequest HTTP request model.
// Присутствующие поля применяются как отдельные переходы состояния;
// отсутствующие не трогают соответствующую часть выбора.
type UpdateSelectionRequest struct {
	ServiceID *string      `json:"serviceId,omitempty"`
	Date      *string      `json:"date,omitempty"` // YYYY-MM-DD
	Slot      *SlotPayload `json:"slot,omitempty"`
	Modal     *string      `json:"modal,omitempty"` // none|addService|addSchedule|bookSlot
}

// SlotPayload модель выбранного слота
type SlotPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
