package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris030500/Barberia/internal/domain"
	blockRepo "github.com/chris030500/Barberia/internal/infra/storage/block"
	"github.com/chris030500/Barberia/internal/service/blocks/models"
)

type fakeBlockRepo struct {
	block  *domain.Block
	getErr error

	overlapping int64
	excludeID   *int64

	created   *domain.Block
	createErr error

	listItems []*domain.Block
	listErr   error

	updated   *domain.Block
	updateErr error

	deleted   bool
	deleteErr error
}

func (f *fakeBlockRepo) Create(_ context.Context, b *domain.Block) (*domain.Block, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 7
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBlockRepo) GetByID(_ context.Context, _ int64) (*domain.Block, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.block
	return &copied, nil
}

func (f *fakeBlockRepo) ListInRange(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Block, error) {
	return f.listItems, f.listErr
}

func (f *fakeBlockRepo) CountOverlapping(_ context.Context, _ int64, _, _ time.Time, excludeID *int64) (int64, error) {
	f.excludeID = excludeID
	return f.overlapping, nil
}

func (f *fakeBlockRepo) Update(_ context.Context, b *domain.Block) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = b
	return nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, _ int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeAppointmentRepo struct {
	overlapping int64
	calls       int
}

func (f *fakeAppointmentRepo) CountOverlapping(_ context.Context, _ int64, _, _ time.Time, _ *int64) (int64, error) {
	f.calls++
	return f.overlapping, nil
}

type fakeBarberRepo struct {
	barber *domain.Barber
	err    error
}

func (f *fakeBarberRepo) GetByID(_ context.Context, _ int64) (*domain.Barber, error) {
	return f.barber, f.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type blocksFixture struct {
	blocks       *fakeBlockRepo
	appointments *fakeAppointmentRepo
	svc          *Service
}

func newBlocksFixture() *blocksFixture {
	f := &blocksFixture{
		blocks:       &fakeBlockRepo{},
		appointments: &fakeAppointmentRepo{},
	}
	barbers := &fakeBarberRepo{barber: &domain.Barber{ID: 1, Name: "Carlos", Active: true}}
	f.svc = NewService(f.blocks, f.appointments, barbers, fakeTxManager{}, noopLogger{})
	return f
}

func interval() (time.Time, time.Time) {
	start := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	return start, start.Add(time.Hour)
}

func TestCreate(t *testing.T) {
	start, end := interval()

	t.Run("success", func(t *testing.T) {
		f := newBlocksFixture()
		reason := "comida"

		got, err := f.svc.Create(context.Background(), &models.CreateBlockRequest{
			BarberID: 1, Start: start, End: end, Reason: &reason,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(7), got.ID)
		assert.True(t, got.Start.Equal(start))
		require.NotNil(t, got.Reason)
		assert.Equal(t, "comida", *got.Reason)
		assert.Equal(t, 1, f.appointments.calls, "citas are checked too")
	})

	t.Run("overlapping block rejected", func(t *testing.T) {
		f := newBlocksFixture()
		f.blocks.overlapping = 1

		_, err := f.svc.Create(context.Background(), &models.CreateBlockRequest{BarberID: 1, Start: start, End: end})
		assert.ErrorIs(t, err, ErrBlockOverlap)
		assert.Nil(t, f.blocks.created)
	})

	t.Run("interval covering scheduled citas rejected", func(t *testing.T) {
		f := newBlocksFixture()
		f.appointments.overlapping = 2

		_, err := f.svc.Create(context.Background(), &models.CreateBlockRequest{BarberID: 1, Start: start, End: end})
		assert.ErrorIs(t, err, ErrAppointmentConflict)
		assert.Nil(t, f.blocks.created)
	})

	t.Run("inverted interval rejected", func(t *testing.T) {
		f := newBlocksFixture()
		_, err := f.svc.Create(context.Background(), &models.CreateBlockRequest{BarberID: 1, Start: end, End: start})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdate(t *testing.T) {
	start, end := interval()

	existing := func() *domain.Block {
		return &domain.Block{ID: 7, BarberID: 1, Start: start, End: end}
	}

	t.Run("moving the interval re-checks overlap excluding itself", func(t *testing.T) {
		f := newBlocksFixture()
		f.blocks.block = existing()
		newStart := start.Add(2 * time.Hour)
		newEnd := end.Add(2 * time.Hour)

		got, err := f.svc.Update(context.Background(), 7, &models.UpdateBlockRequest{Start: &newStart, End: &newEnd})
		require.NoError(t, err)

		assert.True(t, got.Start.Equal(newStart))
		require.NotNil(t, f.blocks.excludeID, "the bloqueo is excluded from its own check")
		assert.Equal(t, int64(7), *f.blocks.excludeID)
		require.NotNil(t, f.blocks.updated)
	})

	t.Run("relabeling skips the overlap check", func(t *testing.T) {
		f := newBlocksFixture()
		f.blocks.block = existing()
		reason := "vacaciones"

		got, err := f.svc.Update(context.Background(), 7, &models.UpdateBlockRequest{Reason: &reason})
		require.NoError(t, err)
		require.NotNil(t, got.Reason)
		assert.Equal(t, "vacaciones", *got.Reason)
		assert.Equal(t, 0, f.appointments.calls)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBlocksFixture()
		f.blocks.getErr = blockRepo.ErrBlockNotFound

		_, err := f.svc.Update(context.Background(), 7, &models.UpdateBlockRequest{})
		assert.ErrorIs(t, err, ErrBlockNotFound)
	})
}

func TestList(t *testing.T) {
	start, end := interval()

	t.Run("returns the bloqueos in range", func(t *testing.T) {
		f := newBlocksFixture()
		f.blocks.listItems = []*domain.Block{{ID: 7, BarberID: 1, Start: start, End: end}}

		got, err := f.svc.List(context.Background(), &models.ListBlocksRequest{
			BarberID: 1, From: start.AddDate(0, 0, -1), To: end.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Total)
		require.Len(t, got.Blocks, 1)
	})

	t.Run("range must be positive", func(t *testing.T) {
		f := newBlocksFixture()
		_, err := f.svc.List(context.Background(), &models.ListBlocksRequest{BarberID: 1, From: end, To: start})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the bloqueo", func(t *testing.T) {
		f := newBlocksFixture()
		require.NoError(t, f.svc.Delete(context.Background(), 7))
		assert.True(t, f.blocks.deleted)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBlocksFixture()
		f.blocks.deleteErr = blockRepo.ErrBlockNotFound
		assert.ErrorIs(t, f.svc.Delete(context.Background(), 7), ErrBlockNotFound)
	})
}
