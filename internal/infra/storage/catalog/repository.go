package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chris030500/Barberia/internal/domain"
	"github.com/chris030500/Barberia/pkg/dbmetrics"
	"github.com/chris030500/Barberia/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"nombre",
	"descripcion",
	"duracion_min",
	"precio_centavos",
	"activo",
	"creado_en",
	"actualizado_en",
}

// Repository postgres repository for the servicio catalog
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches one service by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("servicios").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}
	return s, nil
}

// List returns services ordered by name, optionally only active ones.
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(serviceColumns...).
		From("servicios").
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

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}
	return services, nil
}

func scanService(scan func(dest ...interface{}) error) (*domain.Service, error) {
	var s domain.Service
	var updatedAt sql.NullTime

	err := scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.DurationMin,
		&s.PriceCentavos,
		&s.Active,
		&s.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		s.UpdatedAt = &updatedAt.Time
	}
	return &s, nil
}
