package availability

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDataAccess implements DataAccess against Postgres. Both fetches are
// single range queries; grouping by date happens in memory afterwards.
type PgxDataAccess struct {
	pool *pgxpool.Pool
}

func NewPgxDataAccess(pool *pgxpool.Pool) *PgxDataAccess {
	return &PgxDataAccess{pool: pool}
}

func (r *PgxDataAccess) FetchBookings(ctx context.Context, vendorID, serviceID string, start, end DateKey) ([]BookingRecord, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.vendor_id", "COALESCE(b.listing_id::text, '')", "b.event_date", "b.status",
		"COALESCE(u.display_name, '')", "COALESCE(l.name, '')",
	).
		From("public.bookings b").
		LeftJoin("public.users u ON b.client_id = u.id").
		LeftJoin("public.listings l ON b.listing_id = l.id").
		Where(squirrel.Eq{"b.vendor_id": vendorID}).
		Where(squirrel.GtOrEq{"b.event_date": string(start)}).
		Where(squirrel.LtOrEq{"b.event_date": string(end)})

	if serviceID != "" {
		query = query.Where(squirrel.Eq{"b.listing_id": serviceID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fetch bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch bookings failed: %w", err)
	}
	defer rows.Close()

	var records []BookingRecord
	skipped := 0
	for rows.Next() {
		var (
			rec       BookingRecord
			eventDate time.Time
			status    string
		)
		if err := rows.Scan(&rec.VendorID, &rec.ServiceID, &eventDate, &status, &rec.ClientName, &rec.ServiceName); err != nil {
			// One malformed row must not blank the whole month.
			skipped++
			continue
		}
		parsed, err := parseBookingStatus(status)
		if err != nil {
			skipped++
			continue
		}
		rec.EventDate = MakeDateKey(eventDate, time.UTC)
		rec.Status = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch bookings failed: %w", err)
	}
	if skipped > 0 {
		log.Printf("availability: skipped %d malformed booking rows for vendor %s", skipped, vendorID)
	}

	return records, nil
}

func (r *PgxDataAccess) FetchOffDays(ctx context.Context, vendorID string) ([]OffDayRecord, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(
		"id", "vendor_id", "off_date", "COALESCE(reason, '')",
		"is_recurring", "COALESCE(recurring_pattern, '')",
	).
		From("public.off_days").
		Where(squirrel.Eq{"vendor_id": vendorID}).
		OrderBy("off_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build fetch off-days query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("fetch off-days failed: %w", err)
	}
	defer rows.Close()

	var records []OffDayRecord
	skipped := 0
	for rows.Next() {
		var (
			rec  OffDayRecord
			date time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.VendorID, &date, &rec.Reason, &rec.IsRecurring, &rec.RecurringPattern); err != nil {
			skipped++
			continue
		}
		rec.Date = MakeDateKey(date, time.UTC)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch off-days failed: %w", err)
	}
	if skipped > 0 {
		log.Printf("availability: skipped %d malformed off-day rows for vendor %s", skipped, vendorID)
	}

	return records, nil
}

func parseBookingStatus(s string) (BookingStatus, error) {
	for _, v := range ValidBookingStatuses {
		if BookingStatus(s) == v {
			return v, nil
		}
	}
	return "", ErrInvalidStatus
}
