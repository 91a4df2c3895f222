package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chris030500/Barberia/internal/domain"
	appointmentRepo "github.com/chris030500/Barberia/internal/infra/storage/appointment"
	"github.com/chris030500/Barberia/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	cita   *domain.Appointment
	getErr error

	listItems []*domain.Appointment
	listTotal int64
	listErr   error
	filter    domain.AppointmentsFilter

	updatedStatus *domain.AppointmentStatus
	updateErr     error

	deleted   bool
	deleteErr error
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.cita
	return &copied, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error) {
	f.filter = filter
	return f.listItems, f.listTotal, f.listErr
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedStatus = &status
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, _ int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func scheduledCita() *domain.Appointment {
	start := time.Date(2026, time.September, 10, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:          5,
		BarberID:    1,
		ServiceID:   2,
		ClientName:  "Juan Pérez",
		Start:       start,
		End:         start.Add(30 * time.Minute),
		Status:      domain.StatusScheduled,
		ServiceName: "Corte",
	}
}

func newService(repo *fakeAppointmentRepo) *Service {
	return NewService(repo, fakeTxManager{}, noopLogger{})
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &fakeAppointmentRepo{cita: scheduledCita()}
		got, err := newService(repo).GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, "AGENDADA", got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
		_, err := newService(repo).GetByID(context.Background(), 5)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestChangeStatus(t *testing.T) {
	t.Run("scheduled to cancelled", func(t *testing.T) {
		repo := &fakeAppointmentRepo{cita: scheduledCita()}
		got, err := newService(repo).ChangeStatus(context.Background(), 5, &models.ChangeStatusRequest{Status: "CANCELADA"})
		require.NoError(t, err)
		assert.Equal(t, "CANCELADA", got.Status)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
	})

	t.Run("scheduled to completed", func(t *testing.T) {
		repo := &fakeAppointmentRepo{cita: scheduledCita()}
		got, err := newService(repo).ChangeStatus(context.Background(), 5, &models.ChangeStatusRequest{Status: "COMPLETADA"})
		require.NoError(t, err)
		assert.Equal(t, "COMPLETADA", got.Status)
	})

	t.Run("closed citas never reopen", func(t *testing.T) {
		for _, from := range []domain.AppointmentStatus{domain.StatusCancelled, domain.StatusCompleted} {
			for _, to := range []string{"AGENDADA", "CANCELADA", "COMPLETADA"} {
				repo := &fakeAppointmentRepo{cita: scheduledCita()}
				repo.cita.Status = from

				_, err := newService(repo).ChangeStatus(context.Background(), 5, &models.ChangeStatusRequest{Status: to})
				assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s must be rejected", from, to)
				assert.Nil(t, repo.updatedStatus)
			}
		}
	})

	t.Run("scheduled to scheduled is rejected", func(t *testing.T) {
		repo := &fakeAppointmentRepo{cita: scheduledCita()}
		_, err := newService(repo).ChangeStatus(context.Background(), 5, &models.ChangeStatusRequest{Status: "AGENDADA"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown estado", func(t *testing.T) {
		repo := &fakeAppointmentRepo{cita: scheduledCita()}
		_, err := newService(repo).ChangeStatus(context.Background(), 5, &models.ChangeStatusRequest{Status: "PENDIENTE"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
		_, err := newService(repo).ChangeStatus(context.Background(), 5, &models.ChangeStatusRequest{Status: "CANCELADA"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestList(t *testing.T) {
	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("range must be positive", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		_, err := newService(repo).List(context.Background(), &models.ListAppointmentsRequest{From: to, To: from})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("paging defaults and caps", func(t *testing.T) {
		repo := &fakeAppointmentRepo{listItems: []*domain.Appointment{scheduledCita()}, listTotal: 1}

		got, err := newService(repo).List(context.Background(), &models.ListAppointmentsRequest{
			From: from, To: to, PageSize: domain.MaxPageSize + 50,
		})
		require.NoError(t, err)

		assert.Equal(t, 1, repo.filter.Page)
		assert.Equal(t, domain.MaxPageSize, repo.filter.PageSize)
		assert.Equal(t, int64(1), got.Total)
		require.Len(t, got.Appointments, 1)
	})

	t.Run("status filter is validated", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		bad := "PENDIENTE"
		_, err := newService(repo).List(context.Background(), &models.ListAppointmentsRequest{
			From: from, To: to, Status: &bad,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestDelete(t *testing.T) {
	t.Run("removes the cita", func(t *testing.T) {
		repo := &fakeAppointmentRepo{}
		require.NoError(t, newService(repo).Delete(context.Background(), 5))
		assert.True(t, repo.deleted)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeAppointmentRepo{deleteErr: appointmentRepo.ErrAppointmentNotFound}
		assert.ErrorIs(t, newService(repo).Delete(context.Background(), 5), ErrAppointmentNotFound)
	})
}
