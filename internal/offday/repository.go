package offday

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
)

type Repository interface {
	Create(ctx context.Context, o *OffDay) error
	GetByID(ctx context.Context, id string) (*OffDay, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*OffDay, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const offDayColumns = "id, vendor_id, off_date, reason, is_recurring, recurring_pattern, created_at"

func (r *pgxRepository) Create(ctx context.Context, o *OffDay) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.off_days").
		Columns("vendor_id", "off_date", "reason", "is_recurring", "recurring_pattern").
		Values(o.VendorID, string(o.Date), o.Reason, o.IsRecurring, o.RecurringPattern).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create off-day query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create off-day failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*OffDay, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(offDayColumns).
		From("public.off_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get off-day query failed: %w", err)
	}

	var o OffDay
	var date string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&o.ID, &o.VendorID, &date, &o.Reason, &o.IsRecurring, &o.RecurringPattern, &o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get off-day failed: %w", err)
	}
	o.Date = availability.DateKey(date)
	return &o, nil
}

func (r *pgxRepository) ListByVendor(ctx context.Context, vendorID string) ([]*OffDay, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(offDayColumns).
		From("public.off_days").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		OrderBy("off_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list off-days query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list off-days failed: %w", err)
	}
	defer rows.Close()

	var offDays []*OffDay
	for rows.Next() {
		var o OffDay
		var date string
		if err := rows.Scan(
			&o.ID, &o.VendorID, &date, &o.Reason, &o.IsRecurring, &o.RecurringPattern, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan off-day failed: %w", err)
		}
		o.Date = availability.DateKey(date)
		offDays = append(offDays, &o)
	}

	return offDays, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.off_days").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete off-day query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete off-day failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
