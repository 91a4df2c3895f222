package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/chris030500/Barberia/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/citas", strings.NewReader(body))
	NewHandler(uc, noopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC)

	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:            42,
		BarberID:      1,
		ServiceID:     2,
		ClientName:    "Juan Pérez",
		Start:         start,
		End:           start.Add(30 * time.Minute),
		Status:        "AGENDADA",
		DurationMin:   30,
		PriceCentavos: 15000,
		ServiceName:   "Corte",
	}}

	rec := post(uc, `{
		"barberoId": 1,
		"servicioId": 2,
		"clienteNombre": "Juan Pérez",
		"inicio": "2026-09-10T10:00:00Z"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body CreateAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "AGENDADA", body.Status)
	assert.True(t, body.End.Equal(start.Add(30*time.Minute)))
	assert.Equal(t, 15000, body.PriceCentavos)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Juan Pérez", uc.got.ClientName)
	assert.True(t, uc.got.Start.Equal(start))
}

func TestHandle_BodyRejections(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"barberoId": `},
		{"unknown field", `{"barberoId": 1, "servicioId": 2, "fin": "2026-09-10T11:00:00Z"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := post(uc, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got, "the use case must not run on a bad body")
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	body := `{"barberoId": 1, "servicioId": 2, "clienteNombre": "Juan", "inicio": "2026-09-10T10:00:00Z"}`

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"barber not found", createAppointment.ErrBarberNotFound, http.StatusNotFound},
		{"service not found", createAppointment.ErrServiceNotFound, http.StatusNotFound},
		{"slot taken", createAppointment.ErrSlotConflict, http.StatusConflict},
		{"start in past", createAppointment.ErrStartInPast, http.StatusBadRequest},
		{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.err}
			rec := post(uc, body)
			assert.Equal(t, tc.status, rec.Code)

			var e struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
			assert.NotEmpty(t, e.Error)
		})
	}
}
