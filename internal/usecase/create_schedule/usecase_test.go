package create_schedule

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
	lastReq *backendapi.CreateScheduleRequest
	err     error
	calls   int
}

func (m *mockClient) CreateSchedule(ctx context.Context, req *backendapi.CreateScheduleRequest) error {
	m.calls++
	m.lastReq = req
	return m.err
}

func draftMachine(t *testing.T, dateKey string, windows ...domain.ScheduleWindow) *session.Machine {
	t.Helper()
	m := session.NewMachine()
	m.SelectDate(dateKey)
	for i, w := range windows {
		if i > 0 {
			m.AddWindow()
		}
		require.NoError(t, m.UpdateWindow(i, w))
	}
	return m
}

func TestExecute_PublishesCompleteWindows(t *testing.T) {
	m := draftMachine(t, "2024-03-11",
		domain.ScheduleWindow{Start: "", End: "09:00", Note: domain.NoteWorkingHours},
		domain.ScheduleWindow{Start: "08:00", End: "12:00", Note: domain.NoteWorkingHours},
	)
	require.NoError(t, m.OpenModal(session.ModalAddSchedule))
	client := &mockClient{}

	uc := NewUseCase(m, client, nopLogger{})
	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2024-03-11", resp.DateKey)
	assert.Equal(t, "monday", resp.Day)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "08:00", resp.Windows[0].Start)

	// Незаполненное окно не попало в отправку, день вычислен из даты
	require.NotNil(t, client.lastReq)
	assert.Equal(t, "2024-03-11", client.lastReq.Date)
	assert.Equal(t, "monday", client.lastReq.Day)
	require.Len(t, client.lastReq.Windows, 1)
	assert.Equal(t, backendapi.ScheduleWindowPayload{
		Start: "08:00",
		End:   "12:00",
		Note:  string(domain.NoteWorkingHours),
	}, client.lastReq.Windows[0])

	// После успеха форма закрыта, черновик возвращён к начальному виду
	snap := m.Snapshot()
	assert.Equal(t, session.ModalNone, snap.Modal)
	require.Len(t, snap.Windows, 1)
	assert.Equal(t, domain.BlankScheduleWindow(), snap.Windows[0])
}

func TestExecute_NoDateSelected(t *testing.T) {
	m := session.NewMachine()
	client := &mockClient{}

	uc := NewUseCase(m, client, nopLogger{})
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrNoDateSelected)
	assert.Zero(t, client.calls)
}

func TestExecute_NoCompleteWindows(t *testing.T) {
	m := draftMachine(t, "2024-03-11",
		domain.ScheduleWindow{Start: "08:00", End: "", Note: domain.NoteWorkingHours},
	)
	client := &mockClient{}

	uc := NewUseCase(m, client, nopLogger{})
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrNoWindows)
	assert.Zero(t, client.calls)
}

func TestExecute_RejectedWithVerbatimReason(t *testing.T) {
	m := draftMachine(t, "2024-03-11",
		domain.ScheduleWindow{Start: "08:00", End: "12:00", Note: domain.NoteBreak},
	)
	require.NoError(t, m.OpenModal(session.ModalAddSchedule))
	client := &mockClient{err: &backendapi.RejectedError{Reason: "schedule already exists for this date"}}

	uc := NewUseCase(m, client, nopLogger{})
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrRejected)

	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "schedule already exists for this date", rejection.Reason)

	// Отказ не трогает ни форму, ни черновик
	snap := m.Snapshot()
	assert.Equal(t, session.ModalAddSchedule, snap.Modal)
	require.Len(t, snap.Windows, 1)
	assert.Equal(t, "08:00", snap.Windows[0].Start)
}

func TestExecute_TransportFailure(t *testing.T) {
	m := draftMachine(t, "2024-03-11",
		domain.ScheduleWindow{Start: "08:00", End: "12:00", Note: domain.NoteWorkingHours},
	)
	client := &mockClient{err: errors.New("gateway timeout")}

	uc := NewUseCase(m, client, nopLogger{})
	_, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
	require.Len(t, m.Windows(), 1)
	assert.Equal(t, "08:00", m.Windows()[0].Start)
}
