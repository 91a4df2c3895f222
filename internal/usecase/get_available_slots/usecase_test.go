package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris030500/Barberia/internal/domain"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	catalogRepo "github.com/chris030500/Barberia/internal/infra/storage/catalog"
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

type fakeScheduleRepo struct {
	entries []*domain.WeeklyScheduleEntry
	err     error
}

func (f *fakeScheduleRepo) GetActiveByBarberAndDay(_ context.Context, _ int64, _ int) ([]*domain.WeeklyScheduleEntry, error) {
	return f.entries, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.Block
	err    error
}

func (f *fakeBlockRepo) ListInRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, f.err
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) GetScheduledInRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
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

type engineFixture struct {
	barbers      *fakeBarberRepo
	catalog      *fakeCatalogRepo
	schedule     *fakeScheduleRepo
	blocks       *fakeBlockRepo
	appointments *fakeAppointmentRepo
	uc           *UseCase
}

func newEngineFixture(t *testing.T, settings Settings, now time.Time) *engineFixture {
	t.Helper()

	f := &engineFixture{
		barbers:      &fakeBarberRepo{barber: &domain.Barber{ID: 1, Name: "Carlos", Active: true}},
		catalog:      &fakeCatalogRepo{service: &domain.Service{ID: 2, Name: "Corte", DurationMin: 30, Active: true}},
		schedule:     &fakeScheduleRepo{},
		blocks:       &fakeBlockRepo{},
		appointments: &fakeAppointmentRepo{},
	}
	f.uc = NewUseCase(f.barbers, f.catalog, f.schedule, f.blocks, f.appointments, settings, noopLogger{})
	f.uc.timeProvider = &fakeTimeProvider{now: now}
	return f
}

func defaultSettings(loc *time.Location) Settings {
	return Settings{
		Location:       loc,
		SlotSizeMin:    15,
		MinAdvanceMin:  60,
		MaxAdvanceDays: 30,
	}
}

func TestExecute_FullWorkingDay(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
	require.NoError(t, err)

	assert.Equal(t, 15, resp.SlotSizeMin)
	assert.Equal(t, 30, resp.DurationMin)
	require.Len(t, resp.Slots, 39)
	assert.True(t, resp.Slots[0].Start.Equal(at(day, 9, 0)))
	assert.True(t, resp.Slots[38].Start.Equal(at(day, 18, 30)))
}

func TestExecute_BlockAndCitaExcluded(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}
	f.blocks.blocks = []*domain.Block{
		{ID: 7, BarberID: 1, Start: at(day, 12, 0), End: at(day, 13, 0)},
	}
	f.appointments.appointments = []*domain.Appointment{
		{ID: 9, BarberID: 1, Start: at(day, 15, 0), End: at(day, 15, 30), Status: domain.StatusScheduled},
	}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
	require.NoError(t, err)

	starts := make(map[string]bool, len(resp.Slots))
	for _, s := range resp.Slots {
		starts[s.Start.In(loc).Format("15:04")] = true
	}

	assert.True(t, starts["11:30"], "slot ending at the block start stays")
	assert.False(t, starts["11:45"], "slot running into the block is gone")
	assert.True(t, starts["13:00"], "first slot after the block")
	assert.False(t, starts["14:45"], "slot running into the cita is gone")
	assert.False(t, starts["15:00"], "slot inside the cita is gone")
	assert.True(t, starts["15:30"], "first slot after the cita")
}

func TestExecute_DayOff(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
	f.schedule.entries = nil

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
	require.NoError(t, err)
	require.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_MinAdvanceClipsToday(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	// Asking for today at 10:07 with 60 minutes notice: nothing before 11:07,
	// so the first bookable slot starts 11:15.
	f := newEngineFixture(t, defaultSettings(loc), at(day, 10, 7))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.True(t, resp.Slots[0].Start.Equal(at(day, 11, 15)))
}

func TestExecute_BeyondMaxAdvanceIsEmpty(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	settings := defaultSettings(loc)
	settings.MaxAdvanceDays = 2
	f := newEngineFixture(t, settings, day.AddDate(0, 0, -10))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BufferShrinksWindows(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	settings := defaultSettings(loc)
	settings.BufferBetweenMin = 5
	f := newEngineFixture(t, settings, day.AddDate(0, 0, -3))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "10:00")}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
	require.NoError(t, err)

	// Shrunk window 09:05-09:55; the only aligned start fitting 30 minutes
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Start.Equal(at(day, 9, 15)))
}

func TestExecute_Overrides(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "11:00")}

	resp, err := f.uc.Execute(context.Background(), &Request{
		BarberID: 1, ServiceID: 2, Date: day,
		SlotSizeMin: 30, DurationMin: 60,
	})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.SlotSizeMin)
	assert.Equal(t, 60, resp.DurationMin)
	require.Len(t, resp.Slots, 3)
	assert.True(t, resp.Slots[0].Start.Equal(at(day, 9, 0)))
	assert.True(t, resp.Slots[2].Start.Equal(at(day, 10, 0)))
}

func TestExecute_Idempotent(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
	f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}
	f.blocks.blocks = []*domain.Block{
		{ID: 7, BarberID: 1, Start: at(day, 12, 0), End: at(day, 13, 0)},
	}

	req := &Request{BarberID: 1, ServiceID: 2, Date: day}
	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_Errors(t *testing.T) {
	loc := mustLoc(t, "America/Mexico_City")
	day := monday(t, loc)

	t.Run("barber not found", func(t *testing.T) {
		f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
		f.barbers.barber = nil
		f.barbers.err = barberRepo.ErrBarberNotFound

		_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("service not found", func(t *testing.T) {
		f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
		f.catalog.service = nil
		f.catalog.err = catalogRepo.ErrServiceNotFound

		_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid input", func(t *testing.T) {
		f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
		_, err := f.uc.Execute(context.Background(), &Request{BarberID: 0, ServiceID: 2, Date: day})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("block repository failure maps to internal", func(t *testing.T) {
		f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
		f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}
		f.blocks.err = errors.New("connection refused")

		_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("appointment repository failure maps to internal", func(t *testing.T) {
		f := newEngineFixture(t, defaultSettings(loc), day.AddDate(0, 0, -3))
		f.schedule.entries = []*domain.WeeklyScheduleEntry{entry(1, "09:00", "19:00")}
		f.appointments.err = errors.New("connection refused")

		_, err := f.uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 2, Date: day})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
