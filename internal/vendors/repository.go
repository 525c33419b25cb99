package vendors

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, v *Vendor) error
	GetByID(ctx context.Context, id string) (*Vendor, error)
	GetByOwner(ctx context.Context, ownerUserID string) (*Vendor, error)
	List(ctx context.Context, filter Filter) ([]*Vendor, int, error)
	Update(ctx context.Context, v *Vendor) error
	SetVerified(ctx context.Context, id string, verified bool) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const vendorColumns = "id, owner_user_id, name, category, description, city, latitude, longitude, timezone, max_bookings_per_day, is_verified, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, v *Vendor) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.vendors").
		Columns("owner_user_id", "name", "category", "description", "city",
			"latitude", "longitude", "timezone", "max_bookings_per_day").
		Values(v.OwnerUserID, v.Name, v.Category, v.Description, v.City,
			v.Latitude, v.Longitude, v.Timezone, v.MaxBookingsPerDay).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create vendor query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create vendor failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Vendor, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *pgxRepository) GetByOwner(ctx context.Context, ownerUserID string) (*Vendor, error) {
	return r.getBy(ctx, squirrel.Eq{"owner_user_id": ownerUserID})
}

func (r *pgxRepository) getBy(ctx context.Context, pred squirrel.Eq) (*Vendor, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(vendorColumns).
		From("public.vendors").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vendor query failed: %w", err)
	}

	var v Vendor
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.OwnerUserID, &v.Name, &v.Category, &v.Description, &v.City,
		&v.Latitude, &v.Longitude, &v.Timezone, &v.MaxBookingsPerDay,
		&v.IsVerified, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vendor failed: %w", err)
	}
	return &v, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Vendor, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(vendorColumns + ", count(*) OVER() as total_count").
		From("public.vendors")

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.City != "" {
		query = query.Where(squirrel.Eq{"city": filter.City})
	}
	if filter.Verified != nil {
		query = query.Where(squirrel.Eq{"is_verified": *filter.Verified})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list vendors query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vendors failed: %w", err)
	}
	defer rows.Close()

	var vendors []*Vendor
	var total int

	for rows.Next() {
		var v Vendor
		if err := rows.Scan(
			&v.ID, &v.OwnerUserID, &v.Name, &v.Category, &v.Description, &v.City,
			&v.Latitude, &v.Longitude, &v.Timezone, &v.MaxBookingsPerDay,
			&v.IsVerified, &v.CreatedAt, &v.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan vendor failed: %w", err)
		}
		vendors = append(vendors, &v)
	}

	return vendors, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, v *Vendor) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.vendors").
		Set("name", v.Name).
		Set("category", v.Category).
		Set("description", v.Description).
		Set("city", v.City).
		Set("latitude", v.Latitude).
		Set("longitude", v.Longitude).
		Set("timezone", v.Timezone).
		Set("max_bookings_per_day", v.MaxBookingsPerDay).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update vendor query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update vendor failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.vendors").
		Set("is_verified", verified).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build verify vendor query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("verify vendor failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
