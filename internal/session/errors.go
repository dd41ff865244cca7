package session

import "errors"

var (
	// ErrNoSlotSelected возвращается при попытке открыть окно бронирования
	// без выбранного слота
	ErrNoSlotSelected = errors.New("session: no slot selected")

	// ErrUnknownModal возвращается при попытке открыть неизвестное модальное окно
	ErrUnknownModal = errors.New("session: unknown modal")

	// ErrWindowIndexOutOfRange возвращается при обращении к несуществующему
	// окну расписания в черновике
	ErrWindowIndexOutOfRange = errors.New("session: window index out of range")
)
