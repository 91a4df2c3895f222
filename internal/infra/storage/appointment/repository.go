package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/pkg/dbmetrics"
	"github.com/chris030500/Barberia/pkg/psqlbuilder"
)

// appointmentColumns column list shared by every SELECT; s.nombre is joined in
// for list/summary views.
var appointmentColumns = []string{
	"c.id",
	"c.barbero_id",
	"c.servicio_id",
	"c.cliente_nombre",
	"c.cliente_tel_e164",
	"c.inicio",
	"c.fin",
	"c.estado",
	"c.override_duracion_min",
	"c.override_precio_centavos",
	"c.notas",
	"s.nombre",
	"c.creado_en",
	"c.actualizado_en",
}

// Repository postgres repository for citas
type Repository struct {
	db DBExecutor
}

// NewRepository creates the appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the appointment and fills ID and CreatedAt. If the context
// carries an open transaction, the insert joins it.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("citas").
		Columns(
			"barbero_id",
			"servicio_id",
			"cliente_nombre",
			"cliente_tel_e164",
			"inicio",
			"fin",
			"estado",
			"override_duracion_min",
			"override_precio_centavos",
			"notas",
		).
		Values(
			a.BarberID,
			a.ServiceID,
			a.ClientName,
			a.ClientPhoneE164,
			a.Start,
			a.End,
			a.Status,
			a.DurationOverrideMin,
			a.PriceOverrideCentavos,
			a.Notes,
		).
		Suffix("RETURNING id, creado_en").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return a, nil
}

// GetByID fetches one appointment by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBase().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	a, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}
	return a, nil
}

// ListWithFilter returns the page of appointments intersecting the filter
// range (inicio < to AND fin > from) plus the total match count.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	conds := r.filterConds(filter)

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("citas c").
		Where(conds).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - count: %v", ErrExecQuery, err)
	}

	builder := r.selectBase().
		Where(conds).
		OrderBy("c.inicio ASC")

	if filter.PageSize > 0 {
		builder = builder.
			Limit(uint64(filter.PageSize)).
			Offset(uint64(filter.Page * filter.PageSize))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := scanAppointments(rows)
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

// GetScheduledInRange returns the barber's AGENDADA citas intersecting
// [from, to). Inside a transaction the rows are locked FOR UPDATE so the
// booking path can re-validate overlap before commit.
func (r *Repository) GetScheduledInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := r.selectBase().
		Where(squirrel.Eq{"c.barbero_id": barberID, "c.estado": domain.StatusScheduled}).
		Where(squirrel.Lt{"c.inicio": to}).
		Where(squirrel.Gt{"c.fin": from}).
		OrderBy("c.inicio ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE OF c")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduledInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// CountOverlapping counts the barber's AGENDADA citas truly overlapping
// [start, end). excludeID skips the appointment being edited.
func (r *Repository) CountOverlapping(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("citas c").
		Where(squirrel.Eq{"c.barbero_id": barberID, "c.estado": domain.StatusScheduled}).
		Where(squirrel.Lt{"c.inicio": end}).
		Where(squirrel.Gt{"c.fin": start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"c.id": *excludeID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build count query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - execute count: %v", ErrExecQuery, err)
	}
	return count, nil
}

// GetUpcoming returns the barber's next AGENDADA citas starting at or after
// from, earliest first.
func (r *Repository) GetUpcoming(ctx context.Context, barberID int64, from time.Time, limit int) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectBase().
		Where(squirrel.Eq{"c.barbero_id": barberID, "c.estado": domain.StatusScheduled}).
		Where(squirrel.GtOrEq{"c.inicio": from}).
		OrderBy("c.inicio ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Update rewrites the mutable fields of an existing appointment.
func (r *Repository) Update(ctx context.Context, a *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("citas").
		Set("barbero_id", a.BarberID).
		Set("servicio_id", a.ServiceID).
		Set("cliente_nombre", a.ClientName).
		Set("cliente_tel_e164", a.ClientPhoneE164).
		Set("inicio", a.Start).
		Set("fin", a.End).
		Set("override_duracion_min", a.DurationOverrideMin).
		Set("override_precio_centavos", a.PriceOverrideCentavos).
		Set("notas", a.Notes).
		Set("actualizado_en", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// UpdateStatus sets the estado of an appointment.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("citas").
		Set("estado", status).
		Set("actualizado_en", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// Delete removes the appointment permanently. Status changes are preferred;
// deletion exists for data correction.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("citas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

func (r *Repository) selectBase() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("citas c").
		Join("servicios s ON s.id = c.servicio_id")
}

func (r *Repository) filterConds(filter domain.AppointmentsFilter) squirrel.And {
	conds := squirrel.And{
		squirrel.Lt{"c.inicio": filter.To},
		squirrel.Gt{"c.fin": filter.From},
	}
	if filter.BarberID != nil {
		conds = append(conds, squirrel.Eq{"c.barbero_id": *filter.BarberID})
	}
	if filter.Status != nil {
		conds = append(conds, squirrel.Eq{"c.estado": *filter.Status})
	}
	return conds
}

func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var a domain.Appointment
	var updatedAt sql.NullTime

	err := scan(
		&a.ID,
		&a.BarberID,
		&a.ServiceID,
		&a.ClientName,
		&a.ClientPhoneE164,
		&a.Start,
		&a.End,
		&a.Status,
		&a.DurationOverrideMin,
		&a.PriceOverrideCentavos,
		&a.Notes,
		&a.ServiceName,
		&a.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		a.UpdatedAt = &updatedAt.Time
	}
	return &a, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}
	return appointments, nil
}
