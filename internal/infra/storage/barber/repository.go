package barber

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/pkg/dbmetrics"
	"github.com/chris030500/Barberia/pkg/psqlbuilder"
)

var barberColumns = []string{
	"id",
	"nombre",
	"telefono_e164",
	"descripcion",
	"avatar_url",
	"activo",
	"creado_en",
	"actualizado_en",
}

// Repository postgres repository for barberos
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the barber repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one barber by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barberos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBarber(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}
	return b, nil
}

// List returns barbers ordered by name, optionally only active ones.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(barberColumns...).
		From("barberos").
		OrderBy("nombre ASC")
	if onlyActive {
		builder = builder.Where(squirrel.Eq{"activo": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		b, err := scanBarber(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return barbers, nil
}

// ListServices returns the services offered by the barber, ordered by name.
func (r *Repository) ListServices(ctx context.Context, barberID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.nombre",
		"s.descripcion",
		"s.duracion_min",
		"s.precio_centavos",
		"s.activo",
		"s.creado_en",
		"s.actualizado_en",
	).
		From("servicios s").
		Join("barbero_servicios bs ON bs.servicio_id = s.id").
		Where(squirrel.Eq{"bs.barbero_id": barberID}).
		OrderBy("s.nombre ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		var updatedAt sql.NullTime
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMin, &s.PriceCentavos, &s.Active, &s.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		if updatedAt.Valid {
			s.UpdatedAt = &updatedAt.Time
		}
		services = append(services, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

func scanBarber(scan func(dest ...interface{}) error) (*domain.Barber, error) {
	var b domain.Barber
	var updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.Name,
		&b.PhoneE164,
		&b.Description,
		&b.AvatarURL,
		&b.Active,
		&b.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		b.UpdatedAt = &updatedAt.Time
	}
	return &b, nil
}
