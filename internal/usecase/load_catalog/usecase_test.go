package load_catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFront/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type mockClient struct {
	services    []map[string]any
	servicesErr error
	bookings    []map[string]any
	bookingsErr error
}

func (m *mockClient) ListServices(ctx context.Context) ([]map[string]any, error) {
	return m.services, m.servicesErr
}

func (m *mockClient) ListTodayBookings(ctx context.Context) ([]map[string]any, error) {
	return m.bookings, m.bookingsErr
}

type mockServices struct {
	replaced [][]domain.Service
}

func (m *mockServices) ReplaceAll(items []domain.Service) {
	m.replaced = append(m.replaced, items)
}

type mockBookings struct {
	replaced [][]domain.Booking
}

func (m *mockBookings) ReplaceAll(items []domain.Booking) {
	m.replaced = append(m.replaced, items)
}

func TestExecute_LoadsBothCollections(t *testing.T) {
	client := &mockClient{
		services: []map[string]any{
			{"id": "svc-1", "name": "Haircut", "duration": float64(30), "price": float64(1500)},
			{"_id": map[string]any{"$oid": "64f1bbbb"}, "name": "Massage", "duration": map[string]any{"$numberInt": "60"}, "price": float64(3000)},
		},
		bookings: []map[string]any{
			{"id": "bk-1", "serviceId": "svc-1", "serviceName": "Haircut", "start": "10:00", "end": "10:30"},
		},
	}
	services := &mockServices{}
	bookings := &mockBookings{}

	uc := NewUseCase(client, services, bookings, nopLogger{})
	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Services)
	assert.Equal(t, 1, resp.Bookings)

	// Коллекции заменены целиком нормализованными записями
	require.Len(t, services.replaced, 1)
	require.Len(t, services.replaced[0], 2)
	assert.Equal(t, "svc-1", services.replaced[0][0].ID)
	assert.Equal(t, "64f1bbbb", services.replaced[0][1].ID)
	assert.Equal(t, 60, services.replaced[0][1].DurationMinutes)

	require.Len(t, bookings.replaced, 1)
	assert.Equal(t, "bk-1", bookings.replaced[0][0].ID)
}

// Неудача одной коллекции не мешает загрузке другой
func TestExecute_PartialFailure(t *testing.T) {
	client := &mockClient{
		servicesErr: errors.New("boom"),
		bookings: []map[string]any{
			{"id": "bk-1", "serviceId": "svc-1"},
		},
	}
	services := &mockServices{}
	bookings := &mockBookings{}

	uc := NewUseCase(client, services, bookings, nopLogger{})
	resp, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrPartialLoad)
	require.NotNil(t, resp)
	assert.Equal(t, 0, resp.Services)
	assert.Equal(t, 1, resp.Bookings)

	assert.Empty(t, services.replaced)
	require.Len(t, bookings.replaced, 1)
}

func TestExecute_BothFail(t *testing.T) {
	client := &mockClient{
		servicesErr: errors.New("boom"),
		bookingsErr: errors.New("boom"),
	}
	services := &mockServices{}
	bookings := &mockBookings{}

	uc := NewUseCase(client, services, bookings, nopLogger{})
	resp, err := uc.Execute(context.Background())

	assert.ErrorIs(t, err, ErrPartialLoad)
	require.NotNil(t, resp)
	assert.Zero(t, resp.Services)
	assert.Zero(t, resp.Bookings)
	assert.Empty(t, services.replaced)
	assert.Empty(t, bookings.replaced)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	client := &mockClient{}
	services := &mockServices{}
	bookings := &mockBookings{}

	uc := NewUseCase(client, services, bookings, nopLogger{})
	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, resp.Services)
	assert.Zero(t, resp.Bookings)
	require.Len(t, services.replaced, 1)
	assert.Empty(t, services.replaced[0])
}
