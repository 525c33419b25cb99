package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status availability.BookingStatus) error

	// CompleteBefore marks confirmed and in-progress bookings with event
	// dates strictly before cutoff as completed, returning the number of
	// rows changed.
	CompleteBefore(ctx context.Context, cutoff availability.DateKey) (int, error)

	// CancelPendingBefore cancels pending bookings created before the
	// given instant, returning the number of rows changed.
	CancelPendingBefore(ctx context.Context, createdBefore time.Time) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = "id, client_user_id, vendor_id, listing_id, event_date, status, note, price_cents, currency, created_at, updated_at"

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("client_user_id", "vendor_id", "listing_id", "event_date", "status", "note", "price_cents", "currency").
		Values(b.ClientUserID, b.VendorID, b.ListingID, string(b.EventDate), string(b.Status), b.Note, b.PriceCents, b.Currency).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings")

	if filter.VendorID != "" {
		query = query.Where(squirrel.Eq{"vendor_id": filter.VendorID})
	}
	if filter.ClientUserID != "" {
		query = query.Where(squirrel.Eq{"client_user_id": filter.ClientUserID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": string(filter.Status)})
	}
	if !filter.From.IsZero() {
		query = query.Where(squirrel.GtOrEq{"event_date": string(filter.From)})
	}
	if !filter.To.IsZero() {
		query = query.Where(squirrel.LtOrEq{"event_date": string(filter.To)})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("event_date ASC, created_at ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		var eventDate, status string
		if err := rows.Scan(
			&b.ID, &b.ClientUserID, &b.VendorID, &b.ListingID, &eventDate,
			&status, &b.Note, &b.PriceCents, &b.Currency, &b.CreatedAt, &b.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		b.EventDate = availability.DateKey(eventDate)
		b.Status = availability.BookingStatus(status)
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status availability.BookingStatus) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CompleteBefore(ctx context.Context, cutoff availability.DateKey) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", string(availability.StatusCompleted)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Lt{"event_date": string(cutoff)}).
		Where(squirrel.Eq{"status": []string{
			string(availability.StatusConfirmed),
			string(availability.StatusInProgress),
		}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build complete past bookings query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("complete past bookings failed: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

func (r *pgxRepository) CancelPendingBefore(ctx context.Context, createdBefore time.Time) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", string(availability.StatusCancelled)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"status": string(availability.StatusPending)}).
		Where(squirrel.Lt{"created_at": createdBefore}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build expire pending bookings query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("expire pending bookings failed: %w", err)
	}
	return int(ct.RowsAffected()), nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var eventDate, status string
	if err := row.Scan(
		&b.ID, &b.ClientUserID, &b.VendorID, &b.ListingID, &eventDate,
		&status, &b.Note, &b.PriceCents, &b.Currency, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	b.EventDate = availability.DateKey(eventDate)
	b.Status = availability.BookingStatus(status)
	return &b, nil
}
