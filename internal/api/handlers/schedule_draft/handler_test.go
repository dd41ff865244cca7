package schedule_draft

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingFront/internal/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/schedule/windows", h.HandleAdd).Methods(http.MethodPost)
	r.HandleFunc("/schedule/windows/{index}", h.HandleUpdate).Methods(http.MethodPut)
	r.HandleFunc("/schedule/windows/{index}", h.HandleRemove).Methods(http.MethodDelete)
	return r
}

func decodeDraft(t *testing.T, body *bytes.Buffer) DraftResponse {
	t.Helper()
	var resp DraftResponse
	require.NoError(t, json.Unmarshal(body.Bytes(), &resp))
	return resp
}

func TestHandleAdd(t *testing.T) {
	m := session.NewMachine()
	router := newRouter(NewHandler(m, nopLogger{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/schedule/windows", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeDraft(t, w.Body)
	require.Len(t, resp.Windows, 2)
	assert.Len(t, m.Windows(), 2)
}

func TestHandleUpdate(t *testing.T) {
	m := session.NewMachine()
	router := newRouter(NewHandler(m, nopLogger{}))

	body, _ := json.Marshal(UpdateWindowRequest{Start: "08:00", End: "12:00", Note: "break"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/schedule/windows/0", bytes.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeDraft(t, w.Body)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, WindowView{Start: "08:00", End: "12:00", Note: "break"}, resp.Windows[0])
}

func TestHandleUpdate_InvalidNote(t *testing.T) {
	m := session.NewMachine()
	router := newRouter(NewHandler(m, nopLogger{}))

	body, _ := json.Marshal(UpdateWindowRequest{Start: "08:00", End: "12:00", Note: "lunch"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/schedule/windows/0", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleUpdate_IndexOutOfRange(t *testing.T) {
	m := session.NewMachine()
	router := newRouter(NewHandler(m, nopLogger{}))

	body, _ := json.Marshal(UpdateWindowRequest{Start: "08:00", End: "12:00", Note: "working hours"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/schedule/windows/7", bytes.NewReader(body)))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleUpdate_MalformedIndex(t *testing.T) {
	m := session.NewMachine()
	router := newRouter(NewHandler(m, nopLogger{}))

	body, _ := json.Marshal(UpdateWindowRequest{Start: "08:00", End: "12:00", Note: "working hours"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/schedule/windows/first", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleRemove(t *testing.T) {
	m := session.NewMachine()
	m.AddWindow()
	router := newRouter(NewHandler(m, nopLogger{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/schedule/windows/1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeDraft(t, w.Body)
	assert.Len(t, resp.Windows, 1)
}

// Удаление последнего окна отвечает успехом, но черновик не пустеет
func TestHandleRemove_LastWindowIsKept(t *testing.T) {
	m := session.NewMachine()
	router := newRouter(NewHandler(m, nopLogger{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/schedule/windows/0", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeDraft(t, w.Body)
	assert.Len(t, resp.Windows, 1)
}
