package get_slots

import "errors"

var (
	// ErrNoSelection возвращается, когда услуга или дата ещё не выбраны
	ErrNoSelection = errors.New("get_slots: service and date must be selected")
)
