package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris030500/Barberia/internal/domain"
	barberRepo "github.com/chris030500/Barberia/internal/infra/storage/barber"
	"github.com/chris030500/Barberia/internal/service/schedule/models"
	"github.com/chris030500/Barberia/pkg/types"
)

type fakeScheduleRepo struct {
	entries []*domain.WeeklyScheduleEntry
	getErr  error

	replaced   []*domain.WeeklyScheduleEntry
	replaceErr error
}

func (f *fakeScheduleRepo) GetByBarber(_ context.Context, _ int64) ([]*domain.WeeklyScheduleEntry, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.replaced != nil {
		return f.replaced, nil
	}
	return f.entries, nil
}

func (f *fakeScheduleRepo) Replace(_ context.Context, _ int64, entries []*domain.WeeklyScheduleEntry) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = entries
	return nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (f *fakeBarberRepo) GetByID(_ context.Context, _ int64) (*domain.Barber, error) {
	return f.barber, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newScheduleFixture() (*fakeScheduleRepo, *Service) {
	schedules := &fakeScheduleRepo{}
	barbers := &fakeBarberRepo{barber: &domain.Barber{ID: 1, Name: "Carlos", Active: true}}
	return schedules, NewService(schedules, barbers, fakeTxManager{}, noopLogger{})
}

func storedEntry(dow int, from, to string) *domain.WeeklyScheduleEntry {
	start, _ := types.NewTimeStringFromString(from)
	end, _ := types.NewTimeStringFromString(to)
	return &domain.WeeklyScheduleEntry{
		ID: 1, BarberID: 1, DayOfWeek: dow, StartLocal: start, EndLocal: end, Active: true,
	}
}

func TestGetByBarber(t *testing.T) {
	t.Run("returns the horario", func(t *testing.T) {
		schedules, svc := newScheduleFixture()
		schedules.entries = []*domain.WeeklyScheduleEntry{storedEntry(1, "09:00", "19:00")}

		got, err := svc.GetByBarber(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.BarberID)
		require.Len(t, got.Entries, 1)
		assert.Equal(t, "09:00", got.Entries[0].Start)
		assert.Equal(t, "19:00", got.Entries[0].End)
	})

	t.Run("barber not found", func(t *testing.T) {
		schedules := &fakeScheduleRepo{}
		barbers := &fakeBarberRepo{err: barberRepo.ErrBarberNotFound}
		svc := NewService(schedules, barbers, fakeTxManager{}, noopLogger{})

		_, err := svc.GetByBarber(context.Background(), 1)
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})
}

func TestReplace(t *testing.T) {
	t.Run("replaces the whole horario", func(t *testing.T) {
		schedules, svc := newScheduleFixture()

		got, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{
				{DayOfWeek: 1, Start: "09:00", End: "14:00", Active: true},
				{DayOfWeek: 1, Start: "16:00", End: "20:00", Active: true},
				{DayOfWeek: 2, Start: "09:00", End: "19:00", Active: true},
			},
		})
		require.NoError(t, err)

		require.Len(t, schedules.replaced, 3)
		assert.Len(t, got.Entries, 3)
	})

	t.Run("empty set clears the horario", func(t *testing.T) {
		schedules, svc := newScheduleFixture()
		schedules.entries = []*domain.WeeklyScheduleEntry{storedEntry(1, "09:00", "19:00")}

		got, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{})
		require.NoError(t, err)
		assert.NotNil(t, schedules.replaced)
		assert.Empty(t, got.Entries)
	})

	t.Run("active entries of one day must not collide", func(t *testing.T) {
		_, svc := newScheduleFixture()

		_, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{
				{DayOfWeek: 1, Start: "09:00", End: "14:00", Active: true},
				{DayOfWeek: 1, Start: "13:00", End: "18:00", Active: true},
			},
		})
		assert.ErrorIs(t, err, ErrEntriesOverlap)
	})

	t.Run("touching ranges are legal", func(t *testing.T) {
		schedules, svc := newScheduleFixture()

		_, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{
				{DayOfWeek: 1, Start: "09:00", End: "14:00", Active: true},
				{DayOfWeek: 1, Start: "14:00", End: "18:00", Active: true},
			},
		})
		require.NoError(t, err)
		assert.Len(t, schedules.replaced, 2)
	})

	t.Run("inactive entries may collide", func(t *testing.T) {
		_, svc := newScheduleFixture()

		_, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{
				{DayOfWeek: 1, Start: "09:00", End: "14:00", Active: true},
				{DayOfWeek: 1, Start: "10:00", End: "12:00", Active: false},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("malformed time rejected", func(t *testing.T) {
		_, svc := newScheduleFixture()

		_, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{{DayOfWeek: 1, Start: "9am", End: "14:00", Active: true}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, svc := newScheduleFixture()

		_, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{{DayOfWeek: 1, Start: "14:00", End: "09:00", Active: true}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown day rejected", func(t *testing.T) {
		_, svc := newScheduleFixture()

		_, err := svc.Replace(context.Background(), 1, &models.ReplaceScheduleRequest{
			Entries: []models.EntryRequest{{DayOfWeek: 7, Start: "09:00", End: "14:00", Active: true}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
