package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
	"github.com/m04kA/SMC-BookingFront/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockClient struct {
	lastReq *backendapi.CreateBookingRequest
	raw     map[string]any
	err     error
	calls   int
}

func (m *mockClient) CreateBooking(ctx context.Context, req *backendapi.CreateBookingRequest) (map[string]any, error) {
	m.calls++
	m.lastReq = req
	return m.raw, m.err
}

type mockCollection struct {
	appended []domain.Booking
}

func (m *mockCollection) Append(item domain.Booking) {
	m.appended = append(m.appended, item)
}

func readyMachine(t *testing.T, slot domain.Slot) *session.Machine {
	t.Helper()
	m := session.NewMachine()
	m.SelectService("svc-1")
	m.SelectDate("2024-03-11")
	m.ReplaceSlots([]domain.Slot{slot})
	m.SelectSlot(slot)
	require.NoError(t, m.OpenModal(session.ModalBookSlot))
	return m
}

func TestExecute_Success(t *testing.T) {
	m := readyMachine(t, domain.Slot{Start: "10:00", End: "10:30"})
	client := &mockClient{raw: map[string]any{
		"id":          "bk-1",
		"serviceId":   "svc-1",
		"serviceName": "Haircut",
		"start":       "10:00",
		"end":         "10:30",
		"clientName":  "Ivan",
		"clientPhone": "+79000000000",
	}}
	coll := &mockCollection{}

	uc := NewUseCase(m, client, coll, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{ClientName: "Ivan", ClientPhone: "+79000000000"})

	require.NoError(t, err)
	assert.Equal(t, "bk-1", resp.Booking.ID)
	assert.Equal(t, "Haircut", resp.Booking.ServiceName)

	require.NotNil(t, client.lastReq)
	assert.Equal(t, "svc-1", client.lastReq.ServiceID)
	assert.Equal(t, "2024-03-11", client.lastReq.Date)
	assert.Equal(t, "10:00", client.lastReq.Start)

	require.Len(t, coll.appended, 1)
	assert.Equal(t, resp.Booking, coll.appended[0])
	assert.Equal(t, session.ModalNone, m.Snapshot().Modal)
}

// Время начала слота нормализуется к двухзначным компонентам перед отправкой
func TestExecute_PadsSlotStart(t *testing.T) {
	m := readyMachine(t, domain.Slot{Start: "9:5", End: "9:35"})
	client := &mockClient{raw: map[string]any{"id": "bk-2"}}
	coll := &mockCollection{}

	uc := NewUseCase(m, client, coll, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ClientName: "Ivan", ClientPhone: "+79000000000"})

	require.NoError(t, err)
	require.NotNil(t, client.lastReq)
	assert.Equal(t, "09:05", client.lastReq.Start)
}

func TestExecute_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty client name", req: &Request{ClientName: "", ClientPhone: "+79000000000"}},
		{name: "blank client name", req: &Request{ClientName: "  ", ClientPhone: "+79000000000"}},
		{name: "empty client phone", req: &Request{ClientName: "Ivan", ClientPhone: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := readyMachine(t, domain.Slot{Start: "10:00", End: "10:30"})
			client := &mockClient{}
			coll := &mockCollection{}

			uc := NewUseCase(m, client, coll, nopLogger{})
			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, client.calls)
			assert.Empty(t, coll.appended)
		})
	}
}

func TestExecute_RequiresSelection(t *testing.T) {
	m := session.NewMachine()
	m.SelectService("svc-1")
	// Дата не выбрана
	client := &mockClient{}

	uc := NewUseCase(m, client, &mockCollection{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ClientName: "Ivan", ClientPhone: "+79000000000"})

	assert.ErrorIs(t, err, ErrNoSelection)
	assert.Zero(t, client.calls)
}

func TestExecute_RequiresSelectedSlot(t *testing.T) {
	m := session.NewMachine()
	m.SelectService("svc-1")
	m.SelectDate("2024-03-11")
	client := &mockClient{}

	uc := NewUseCase(m, client, &mockCollection{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ClientName: "Ivan", ClientPhone: "+79000000000"})

	assert.ErrorIs(t, err, ErrNoSlotSelected)
	assert.Zero(t, client.calls)
}

func TestExecute_RejectedWithVerbatimReason(t *testing.T) {
	m := readyMachine(t, domain.Slot{Start: "10:00", End: "10:30"})
	client := &mockClient{err: &backendapi.RejectedError{Reason: "slot is already taken"}}
	coll := &mockCollection{}

	uc := NewUseCase(m, client, coll, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ClientName: "Ivan", ClientPhone: "+79000000000"})

	assert.ErrorIs(t, err, ErrRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "slot is already taken", rejection.Reason)

	// Отказ не изменяет локальное состояние
	assert.Empty(t, coll.appended)
	assert.Equal(t, session.ModalBookSlot, m.Snapshot().Modal)
}

func TestExecute_TransportFailure(t *testing.T) {
	m := readyMachine(t, domain.Slot{Start: "10:00", End: "10:30"})
	client := &mockClient{err: errors.New("connection reset")}
	coll := &mockCollection{}

	uc := NewUseCase(m, client, coll, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{ClientName: "Ivan", ClientPhone: "+79000000000"})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, coll.appended)
	assert.Equal(t, session.ModalBookSlot, m.Snapshot().Modal)
}
