package session

import (
	"sync"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

// Modal идентификатор модального окна интерфейса
type Modal string

const (
	ModalNone        Modal = "none"
	ModalAddService  Modal = "addService"
	ModalAddSchedule Modal = "addSchedule"
	ModalBookSlot    Modal = "bookSlot"
)

// Machine владеет состоянием незавершённого выбора пользователя: услуга,
// дата, список слотов, выбранный слот, черновик окон расписания и флаг
// модального окна. Все переходы выполняются под мьютексом, чтение идёт
// через снимки, поэтому параллельные поверхности интерфейса никогда не
// видят состояние в момент изменения.
//
// Выбор новой услуги или даты намеренно не очищает список слотов:
// предыдущий список остаётся на экране до завершения следующего запроса
// доступности.
type Machine struct {
	mu sync.RWMutex

	selectedService string
	selectedDate    string
	slots           []domain.Slot
	selectedSlot    *domain.Slot
	windows         []domain.ScheduleWindow
	modal           Modal
}

// Snapshot неизменяемый снимок состояния для чтения
type Snapshot struct {
	SelectedService string
	SelectedDate    string
	Slots           []domain.Slot
	SelectedSlot    *domain.Slot
	Windows         []domain.ScheduleWindow
	Modal           Modal
}

// NewMachine создает машину состояний в начальном положении:
// пустой выбор, ни одного модального окна, черновик расписания
// из одного пустого окна.
func NewMachine() *Machine {
	return &Machine{
		slots:   []domain.Slot{},
		windows: []domain.ScheduleWindow{domain.BlankScheduleWindow()},
		modal:   ModalNone,
	}
}

// SelectService запоминает выбранную услугу. Список слотов не трогается.
func (m *Machine) SelectService(serviceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedService = serviceID
}

// SelectDate запоминает выбранную дату (ключ YYYY-MM-DD). Список слотов не трогается.
func (m *Machine) SelectDate(dateKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedDate = dateKey
}

// Selection возвращает текущую пару (услуга, дата)
func (m *Machine) Selection() (serviceID, dateKey string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.selectedService, m.selectedDate
}

// SelectSlot запоминает слот-кандидат для бронирования
func (m *Machine) SelectSlot(slot domain.Slot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectedSlot = &slot
}

// SelectedSlot возвращает выбранный слот, если он есть
func (m *Machine) SelectedSlot() (domain.Slot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.selectedSlot == nil {
		return domain.Slot{}, false
	}
	return *m.selectedSlot, true
}

// ReplaceSlots атомарно заменяет весь список слотов результатом последнего
// завершившегося запроса доступности. Частичных обновлений не бывает.
// Если выбранный слот отсутствует в новом списке, выбор сбрасывается:
// пользователь не может продолжать смотреть на слот, которого больше нет.
func (m *Machine) ReplaceSlots(slots []domain.Slot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots = make([]domain.Slot, len(slots))
	copy(m.slots, slots)

	if m.selectedSlot == nil {
		return
	}
	for _, s := range m.slots {
		if s.Equal(*m.selectedSlot) {
			return
		}
	}
	m.selectedSlot = nil
}

// Slots возвращает копию текущего списка слотов
func (m *Machine) Slots() []domain.Slot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Slot, len(m.slots))
	copy(out, m.slots)
	return out
}

// OpenModal открывает модальное окно. Одновременно может быть открыто не
// больше одного окна; открытие другого окна заменяет текущее.
// Окно бронирования требует выбранного слота.
func (m *Machine) OpenModal(modal Modal) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch modal {
	case ModalAddService, ModalAddSchedule:
	case ModalBookSlot:
		if m.selectedSlot == nil {
			return ErrNoSlotSelected
		}
	default:
		return ErrUnknownModal
	}

	m.modal = modal
	return nil
}

// CloseModal закрывает открытое модальное окно. Выбор услуги и даты
// при этом сохраняется.
func (m *Machine) CloseModal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modal = ModalNone
}

// AddWindow добавляет пустое окно в черновик расписания
func (m *Machine) AddWindow() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = append(m.windows, domain.BlankScheduleWindow())
}

// UpdateWindow заменяет окно черновика по индексу, не затрагивая остальные
func (m *Machine) UpdateWindow(index int, window domain.ScheduleWindow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.windows) {
		return ErrWindowIndexOutOfRange
	}
	m.windows[index] = window
	return nil
}

// RemoveWindow удаляет окно черновика по индексу. В черновике всегда
// остаётся хотя бы одно окно: удаление последнего — no-op.
func (m *Machine) RemoveWindow(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.windows) {
		return ErrWindowIndexOutOfRange
	}
	if len(m.windows) == 1 {
		return nil
	}
	m.windows = append(m.windows[:index], m.windows[index+1:]...)
	return nil
}

// ResetWindows возвращает черновик к начальному виду: одно пустое окно
func (m *Machine) ResetWindows() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windows = []domain.ScheduleWindow{domain.BlankScheduleWindow()}
}

// CompleteWindows возвращает окна черновика, у которых заполнены и начало,
// и конец. Незаполненные окна молча пропускаются.
func (m *Machine) CompleteWindows() []domain.ScheduleWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ScheduleWindow, 0, len(m.windows))
	for _, w := range m.windows {
		if w.IsComplete() {
			out = append(out, w)
		}
	}
	return out
}

// Windows возвращает копию черновика окон расписания
func (m *Machine) Windows() []domain.ScheduleWindow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.ScheduleWindow, len(m.windows))
	copy(out, m.windows)
	return out
}

// Snapshot возвращает согласованный снимок всего состояния
func (m *Machine) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		SelectedService: m.selectedService,
		SelectedDate:    m.selectedDate,
		Slots:           make([]domain.Slot, len(m.slots)),
		Windows:         make([]domain.ScheduleWindow, len(m.windows)),
		Modal:           m.modal,
	}
	copy(snap.Slots, m.slots)
	copy(snap.Windows, m.windows)

	if m.selectedSlot != nil {
		slot := *m.selectedSlot
		snap.SelectedSlot = &slot
	}
	return snap
}
