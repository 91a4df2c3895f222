package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris030500/Barberia/internal/domain"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	catalogRepo "github.com/chris030500/Barberia/internal/infra/storage/catalog"
	"github.com/chris030500/Barberia/pkg/ptr"
)

type fakeBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (f *fakeBarberRepo) GetByID(_ context.Context, _ int64) (*domain.Barber, error) {
	return f.barber, f.err
}

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeAppointmentRepo struct {
	overlapping int64
	countErr    error

	created   *domain.Appointment
	createErr error
}

func (f *fakeAppointmentRepo) CountOverlapping(_ context.Context, _ int64, _, _ time.Time, _ *int64) (int64, error) {
	return f.overlapping, f.countErr
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *a
	created.ID = 42
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type bookingFixture struct {
	barbers      *fakeBarberRepo
	catalog      *fakeCatalogRepo
	appointments *fakeAppointmentRepo
	tx           *fakeTxManager
	uc           *UseCase
}

func newBookingFixture(t *testing.T, now time.Time) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		barbers:      &fakeBarberRepo{barber: &domain.Barber{ID: 1, Name: "Carlos", Active: true}},
		catalog:      &fakeCatalogRepo{service: &domain.Service{ID: 2, Name: "Corte", DurationMin: 30, PriceCentavos: 15000, Active: true}},
		appointments: &fakeAppointmentRepo{},
		tx:           &fakeTxManager{},
	}
	f.uc = NewUseCase(f.barbers, f.catalog, f.appointments, f.tx, noopLogger{})
	f.uc.timeProvider = &fakeTimeProvider{now: now}
	return f
}

func validRequest(start time.Time) *Request {
	return &Request{
		BarberID:   1,
		ServiceID:  2,
		ClientName: "Juan Pérez",
		Start:      start,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	f := newBookingFixture(t, now)
	resp, err := f.uc.Execute(context.Background(), validRequest(start))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.True(t, resp.Start.Equal(start))
	assert.True(t, resp.End.Equal(start.Add(30*time.Minute)), "end derives from the service duration")
	assert.Equal(t, 30, resp.DurationMin)
	assert.Equal(t, 15000, resp.PriceCentavos)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, 1, f.tx.calls, "insert runs inside one transaction")
}

func TestExecute_DurationOverrideDrivesEnd(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	f := newBookingFixture(t, now)
	req := validRequest(start)
	req.DurationOverrideMin = ptr.Ptr(45)
	req.PriceOverrideCentavos = ptr.Ptr(20000)

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.End.Equal(start.Add(45*time.Minute)))
	assert.Equal(t, 45, resp.DurationMin)
	assert.Equal(t, 20000, resp.PriceCentavos)
	require.NotNil(t, f.appointments.created.DurationOverrideMin)
	assert.Equal(t, 45, *f.appointments.created.DurationOverrideMin)
}

func TestExecute_SlotConflict(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	f := newBookingFixture(t, now)
	f.appointments.overlapping = 1

	_, err := f.uc.Execute(context.Background(), validRequest(now.Add(24*time.Hour)))
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Nil(t, f.appointments.created, "nothing is inserted on conflict")
}

func TestExecute_StartInPast(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

	f := newBookingFixture(t, now)
	_, err := f.uc.Execute(context.Background(), validRequest(now.Add(-time.Minute)))
	assert.ErrorIs(t, err, ErrStartInPast)
	assert.Equal(t, 0, f.tx.calls)
}

func TestExecute_NotFound(t *testing.T) {
	now := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)

	t.Run("barber", func(t *testing.T) {
		f := newBookingFixture(t, now)
		f.barbers.barber = nil
		f.barbers.err = barberRepo.ErrBarberNotFound

		_, err := f.uc.Execute(context.Background(), validRequest(start))
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("service", func(t *testing.T) {
		f := newBookingFixture(t, now)
		f.catalog.service = nil
		f.catalog.err = catalogRepo.ErrServiceNotFound

		_, err := f.uc.Execute(context.Background(), validRequest(start))
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestValidateRequest(t *testing.T) {
	start := time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC)
	negative := -5
	zero := 0
	longNotes := string(make([]byte, domain.MaxNotesLength+1))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing barber", func(r *Request) { r.BarberID = 0 }},
		{"missing service", func(r *Request) { r.ServiceID = 0 }},
		{"blank client name", func(r *Request) { r.ClientName = "   " }},
		{"zero start", func(r *Request) { r.Start = time.Time{} }},
		{"zero duration override", func(r *Request) { r.DurationOverrideMin = &zero }},
		{"negative price override", func(r *Request) { r.PriceOverrideCentavos = &negative }},
		{"notes too long", func(r *Request) { r.Notes = &longNotes }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(start)
			tc.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest(start)))
	})
}
