package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris030500/Barberia/internal/domain"
	getAvailableSlots "github.com/chris030500/Barberia/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func serve(uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/barberos/{barberoId}/slots", NewHandler(uc, noopLogger{}).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	start := date.Add(9 * time.Hour)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		BarberID:    1,
		ServiceID:   2,
		Date:        date,
		SlotSizeMin: 15,
		DurationMin: 30,
		Slots:       []domain.Slot{{Start: start, End: start.Add(30 * time.Minute)}},
	}}

	rec := serve(uc, "/barberos/1/slots?servicioId=2&fecha=2026-09-07")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.BarberID)
	assert.Equal(t, "2026-09-07", body.Date)
	require.Len(t, body.Slots, 1)
	assert.True(t, body.Slots[0].Start.Equal(start))

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.BarberID)
	assert.Equal(t, int64(2), uc.got.ServiceID)
	assert.Equal(t, 0, uc.got.SlotSizeMin, "omitted override stays zero")
}

func TestHandle_OptionalOverrides(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{Slots: []domain.Slot{}}}

	rec := serve(uc, "/barberos/1/slots?servicioId=2&fecha=2026-09-07&slotSizeMin=30&duracionMin=60")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, 30, uc.got.SlotSizeMin)
	assert.Equal(t, 60, uc.got.DurationMin)
}

func TestHandle_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"non-numeric barber id", "/barberos/abc/slots?servicioId=2&fecha=2026-09-07"},
		{"missing service id", "/barberos/1/slots?fecha=2026-09-07"},
		{"non-numeric service id", "/barberos/1/slots?servicioId=x&fecha=2026-09-07"},
		{"missing date", "/barberos/1/slots?servicioId=2"},
		{"malformed date", "/barberos/1/slots?servicioId=2&fecha=07-09-2026"},
		{"non-numeric slot size", "/barberos/1/slots?servicioId=2&fecha=2026-09-07&slotSizeMin=abc"},
		{"non-numeric duration", "/barberos/1/slots?servicioId=2&fecha=2026-09-07&duracionMin=abc"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(uc, tc.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got, "the use case must not run on a bad request")
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"barber not found", getAvailableSlots.ErrBarberNotFound, http.StatusNotFound},
		{"service not found", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"invalid input", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			rec := serve(uc, "/barberos/1/slots?servicioId=2&fecha=2026-09-07")
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
