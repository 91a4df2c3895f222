package block

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

var blockColumns = []string{
	"id",
	"barbero_id",
	"inicio",
	"fin",
	"motivo",
	"creado_en",
}

// Repository postgres repository for barber time-off bloqueos
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates the block repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the block and fills ID and CreatedAt.
func (r *Repository) Create(ctx context.Context, b *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("barbero_bloqueos").
		Columns("barbero_id", "inicio", "fin", "motivo").
		Values(b.BarberID, b.Start, b.End, b.Reason).
		Suffix("RETURNING id, creado_en").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return b, nil
}

// GetByID fetches one block by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("barbero_bloqueos").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Block
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID, &b.BarberID, &b.Start, &b.End, &b.Reason, &b.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}
	return &b, nil
}

// ListInRange returns the barber's blocks intersecting [from, to), earliest
// first. Overlap test matches the half-open convention: inicio < to, fin > from.
func (r *Repository) ListInRange(ctx context.Context, barberID int64, from, to time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(blockColumns...).
		From("barbero_bloqueos").
		Where(squirrel.Eq{"barbero_id": barberID}).
		Where(squirrel.Lt{"inicio": to}).
		Where(squirrel.Gt{"fin": from}).
		OrderBy("inicio ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// CountOverlapping counts the barber's blocks truly overlapping [start, end).
// excludeID skips the block being edited.
func (r *Repository) CountOverlapping(ctx context.Context, barberID int64, start, end time.Time, excludeID *int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("COUNT(*)").
		From("barbero_bloqueos").
		Where(squirrel.Eq{"barbero_id": barberID}).
		Where(squirrel.Lt{"inicio": end}).
		Where(squirrel.Gt{"fin": start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
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

// GetUpcoming returns the barber's next blocks still ending after the given
// instant, earliest first.
func (r *Repository) GetUpcoming(ctx context.Context, barberID int64, after time.Time, limit int) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("barbero_bloqueos").
		Where(squirrel.Eq{"barbero_id": barberID}).
		Where(squirrel.Gt{"fin": after}).
		OrderBy("inicio ASC").
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

	return scanBlocks(rows)
}

// Update rewrites the block range and reason.
func (r *Repository) Update(ctx context.Context, b *domain.Block) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbero_bloqueos").
		Set("inicio", b.Start).
		Set("fin", b.End).
		Set("motivo", b.Reason).
		Where(squirrel.Eq{"id": b.ID}).
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
		return ErrBlockNotFound
	}
	return nil
}

// Delete removes the block.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("barbero_bloqueos").
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
		return ErrBlockNotFound
	}
	return nil
}

func scanBlocks(rows *sql.Rows) ([]*domain.Block, error) {
	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var b domain.Block
		if err := rows.Scan(&b.ID, &b.BarberID, &b.Start, &b.End, &b.Reason, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}
	return blocks, nil
}
