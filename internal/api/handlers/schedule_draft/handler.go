package schedule_draft

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingFront/internal/api/handlers"
	"github.com/m04kA/SMC-BookingFront/internal/domain"
	"github.com/m04kA/SMC-BookingFront/internal/session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidIndex       = "некорректный индекс окна"
	msgWindowNotFound     = "окно с таким индексом не найдено"
	msgInvalidNote        = "допустимые типы окна: working hours, break"
)

type Handler struct {
	session SessionState
	logger  Logger
}

func NewHandler(session SessionState, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/schedule/windows
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	h.session.AddWindow()

	h.logger.Info("POST /schedule/windows - Window added")
	handlers.RespondJSON(w, http.StatusCreated, FromWindows(h.session.Windows()))
}

// HandleUpdate PUT /api/v1/schedule/windows/{index}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	index, ok := h.windowIndex(w, r)
	if !ok {
		return
	}

	var req UpdateWindowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/windows/{index} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	note := domain.WindowNote(req.Note)
	if !note.IsValid() {
		h.logger.Warn("PUT /schedule/windows/{index} - Invalid note %q", req.Note)
		handlers.RespondBadRequest(w, msgInvalidNote)
		return
	}

	window := domain.ScheduleWindow{Start: req.Start, End: req.End, Note: note}
	if err := h.session.UpdateWindow(index, window); err != nil {
		if errors.Is(err, session.ErrWindowIndexOutOfRange) {
			h.logger.Warn("PUT /schedule/windows/{index} - Window %d not found", index)
			handlers.RespondNotFound(w, msgWindowNotFound)
			return
		}
		h.logger.Error("PUT /schedule/windows/{index} - Failed to update window %d: %v", index, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /schedule/windows/{index} - Window %d updated", index)
	handlers.RespondJSON(w, http.StatusOK, FromWindows(h.session.Windows()))
}

// HandleRemove DELETE /api/v1/schedule/windows/{index}
// Удаление последнего оставшегося окна — no-op: черновик всегда содержит
// хотя бы одно окно.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	index, ok := h.windowIndex(w, r)
	if !ok {
		return
	}

	if err := h.session.RemoveWindow(index); err != nil {
		if errors.Is(err, session.ErrWindowIndexOutOfRange) {
			h.logger.Warn("DELETE /schedule/windows/{index} - Window %d not found", index)
			handlers.RespondNotFound(w, msgWindowNotFound)
			return
		}
		h.logger.Error("DELETE /schedule/windows/{index} - Failed to remove window %d: %v", index, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /schedule/windows/{index} - Window %d removed", index)
	handlers.RespondJSON(w, http.StatusOK, FromWindows(h.session.Windows()))
}

func (h *Handler) windowIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	indexStr := mux.Vars(r)["index"]
	index, err := strconv.Atoi(indexStr)
	if err != nil || index < 0 {
		h.logger.Warn("schedule/windows - Invalid index %q", indexStr)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return 0, false
	}
	return index, true
}
