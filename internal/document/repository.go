package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	ListByVendor(ctx context.Context, vendorID, purpose string) ([]*Document, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const documentColumns = "id, vendor_id, uploaded_by, purpose, filename, storage_path, thumbnail_path, content_type, size, created_at"

func (r *pgxRepository) Create(ctx context.Context, d *Document) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.documents").
		Columns("id", "vendor_id", "uploaded_by", "purpose", "filename", "storage_path", "thumbnail_path", "content_type", "size").
		Values(d.ID, d.VendorID, d.UploadedBy, d.Purpose, d.Filename, d.StoragePath, d.ThumbnailPath, d.ContentType, d.Size).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create document query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&d.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Document, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(documentColumns).
		From("public.documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get document query failed: %w", err)
	}

	var d Document
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.VendorID, &d.UploadedBy, &d.Purpose, &d.Filename,
		&d.StoragePath, &d.ThumbnailPath, &d.ContentType, &d.Size, &d.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get document failed: %w", err)
	}
	return &d, nil
}

func (r *pgxRepository) ListByVendor(ctx context.Context, vendorID, purpose string) ([]*Document, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(documentColumns).
		From("public.documents").
		Where(squirrel.Eq{"vendor_id": vendorID})
	if purpose != "" {
		query = query.Where(squirrel.Eq{"purpose": purpose})
	}

	sql, args, err := query.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list documents query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents failed: %w", err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(
			&d.ID, &d.VendorID, &d.UploadedBy, &d.Purpose, &d.Filename,
			&d.StoragePath, &d.ThumbnailPath, &d.ContentType, &d.Size, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document failed: %w", err)
		}
		docs = append(docs, &d)
	}

	return docs, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.documents").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete document query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete document failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
