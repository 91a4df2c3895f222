package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/pkg/dbmetrics"
	"github.com/chris030500/Barberia/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"barbero_id",
	"dow",
	"desde",
	"hasta",
	"activo",
}

// Repository postgres repository for the weekly horario of a barber
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the schedule repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBarber returns all weekly entries of a barber ordered by day and start.
func (r *Repository) GetByBarber(ctx context.Context, barberID int64) ([]*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("barbero_horario_semanal").
		Where(squirrel.Eq{"barbero_id": barberID}).
		OrderBy("dow ASC, desde ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBarber - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// GetActiveByBarberAndDay returns the active entries for one day of week,
// ordered by start time. An empty result means the barber does not work that
// day; callers treat it as a normal state.
func (r *Repository) GetActiveByBarberAndDay(ctx context.Context, barberID int64, dayOfWeek int) ([]*domain.WeeklyScheduleEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("barbero_horario_semanal").
		Where(squirrel.Eq{"barbero_id": barberID, "dow": dayOfWeek, "activo": true}).
		OrderBy("desde ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBarberAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByBarberAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Replace swaps the barber's whole schedule: delete everything, insert the
// new entries. Callers run it inside a transaction so the schedule is never
// observed half-replaced.
func (r *Repository) Replace(ctx context.Context, barberID int64, entries []*domain.WeeklyScheduleEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("barbero_horario_semanal").
		Where(squirrel.Eq{"barbero_id": barberID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("barbero_horario_semanal").
		Columns("barbero_id", "dow", "desde", "hasta", "activo")
	for _, e := range entries {
		builder = builder.Values(barberID, e.DayOfWeek, e.StartLocal, e.EndLocal, e.Active)
	}

	insertQuery, insertArgs, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]*domain.WeeklyScheduleEntry, error) {
	entries := make([]*domain.WeeklyScheduleEntry, 0)
	for rows.Next() {
		var e domain.WeeklyScheduleEntry
		if err := rows.Scan(&e.ID, &e.BarberID, &e.DayOfWeek, &e.StartLocal, &e.EndLocal, &e.Active); err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}
