package create_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingFront/internal/calendar"
	"github.com/m04kA/SMC-BookingFront/internal/integrations/backendapi"
)

// UseCase use case публикации расписания оператора на выбранную дату.
//
// День недели всегда вычисляется из даты отправляемого расписания, никогда
// не берётся из пользовательского ввода. Окна без начала или конца молча
// отбрасываются; пустая после отбора отправка не допускается.
type UseCase struct {
	session SessionState
	client  BackendClient
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(session SessionState, client BackendClient, logger Logger) *UseCase {
	return &UseCase{
		session: session,
		client:  client,
		logger:  logger,
	}
}

// Execute выполняет use case публикации расписания
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Дата обязательна
	_, dateKey := uc.session.Selection()
	if dateKey == "" {
		uc.logger.Warn("CreateSchedule: no date selected")
		return nil, ErrNoDateSelected
	}

	// 2. Отбираем заполненные окна черновика
	windows := uc.session.CompleteWindows()
	if len(windows) == 0 {
		uc.logger.Warn("CreateSchedule: draft has no complete windows for date=%s", dateKey)
		return nil, ErrNoWindows
	}

	// 3. Вычисляем день недели из даты отправки
	day, err := calendar.WeekdayOf(dateKey)
	if err != nil {
		uc.logger.Warn("CreateSchedule: invalid date key %q: %v", dateKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("CreateSchedule: publishing %d windows for date=%s (%s)", len(windows), dateKey, day)

	// 4. Отправляем расписание на бэкенд
	payload := make([]backendapi.ScheduleWindowPayload, 0, len(windows))
	for _, w := range windows {
		payload = append(payload, backendapi.ScheduleWindowPayload{
			Start: w.Start,
			End:   w.End,
			Note:  string(w.Note),
		})
	}

	err = uc.client.CreateSchedule(ctx, &backendapi.CreateScheduleRequest{
		Date:    dateKey,
		Day:     day,
		Windows: payload,
	})
	if err != nil {
		var rejected *backendapi.RejectedError
		if errors.As(err, &rejected) {
			uc.logger.Warn("CreateSchedule: rejected by backend for date=%s: %v", dateKey, err)
			if rejected.Reason != "" {
				return nil, &RejectionError{Reason: rejected.Reason}
			}
			return nil, ErrRejected
		}
		uc.logger.Error("CreateSchedule: request failed for date=%s: %v", dateKey, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Закрываем форму и возвращаем черновик к начальному виду
	uc.session.CloseModal()
	uc.session.ResetWindows()

	uc.logger.Info("CreateSchedule: successfully published schedule for date=%s (%s)", dateKey, day)
	return &Response{DateKey: dateKey, Day: day, Windows: windows}, nil
}
