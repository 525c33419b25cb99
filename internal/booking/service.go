package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/listing"
	"github.com/wedmarket/wedding-vendor-backend/internal/notification"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type CreateRequest struct {
	ClientUserID string
	VendorID     string
	ListingID    *string
	EventDate    string
	Note         string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status availability.BookingStatus) (*Booking, error)

	// CompletePastConfirmed moves confirmed and in-progress bookings whose
	// event date has passed into the completed state. Run by the scheduler.
	CompletePastConfirmed(ctx context.Context, now time.Time) (int, error)

	// ExpireStalePending cancels pending requests older than maxAge that
	// the vendor never answered. Run by the scheduler.
	ExpireStalePending(ctx context.Context, now time.Time, maxAge time.Duration) (int, error)
}

type service struct {
	repo           Repository
	vendorService  vendors.Service
	listingService listing.Service
	avail          *availability.Service
	notifier       notification.Service
}

func NewService(repo Repository, vendorService vendors.Service, listingService listing.Service, avail *availability.Service, notifier notification.Service) Service {
	return &service{
		repo:           repo,
		vendorService:  vendorService,
		listingService: listingService,
		avail:          avail,
		notifier:       notifier,
	}
}

// Create places a new booking request in pending state.
//
// The requested date is checked against the vendor's live availability
// before insert. A degraded availability result (backing store briefly
// unreachable) does not block the request; the date conflict, if any,
// surfaces when the vendor reviews it.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	date, err := availability.ParseDateKey(req.EventDate)
	if err != nil {
		return nil, err
	}

	info, err := s.vendorService.CalendarInfo(ctx, req.VendorID)
	if err != nil {
		return nil, err
	}

	if date.Before(availability.Today(info.Location)) {
		return nil, ErrPastDate
	}

	booking := &Booking{
		ClientUserID: req.ClientUserID,
		VendorID:     req.VendorID,
		EventDate:    date,
		Status:       availability.StatusPending,
		Note:         req.Note,
	}

	if req.ListingID != nil && *req.ListingID != "" {
		l, err := s.listingService.GetByID(ctx, *req.ListingID)
		if err != nil {
			return nil, err
		}
		if l.VendorID != req.VendorID {
			return nil, ErrListingMismatch
		}
		booking.ListingID = req.ListingID
		booking.PriceCents = l.PriceCents
		booking.Currency = l.Currency
	}

	serviceID := ""
	if booking.ListingID != nil {
		serviceID = *booking.ListingID
	}

	result, err := s.avail.Range(ctx, availability.RangeRequest{
		VendorID:  req.VendorID,
		ServiceID: serviceID,
		Start:     date,
		End:       date,
		Capacity:  info.Capacity,
		Occupying: availability.DefaultOccupying(),
		Location:  info.Location,
	})
	if err != nil {
		return nil, err
	}
	if result.Degraded {
		log.Printf("booking: availability degraded for vendor %s, accepting request on %s unchecked", req.VendorID, date)
	} else if day, ok := result.Days[date]; ok && !day.IsAvailable {
		return nil, ErrDateUnavailable
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.notify(ctx, vendorOwnerID(ctx, s.vendorService, booking.VendorID), notification.KindBookingRequested,
		fmt.Sprintf("New booking request for %s", booking.EventDate), booking.ID)

	return booking, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus advances a booking through the status machine.
//
// Confirming re-checks capacity: other requests may have been confirmed
// since this one was placed, and a confirm that would overbook the day is
// rejected instead of silently stacking.
func (s *service) UpdateStatus(ctx context.Context, id string, status availability.BookingStatus) (*Booking, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, status) {
		return nil, ErrInvalidTransition
	}

	if status == availability.StatusConfirmed {
		if err := s.checkCapacity(ctx, b); err != nil {
			return nil, err
		}
	}

	b.Status = status
	if err := s.repo.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}

	switch status {
	case availability.StatusConfirmed:
		s.notify(ctx, b.ClientUserID, notification.KindBookingConfirmed,
			fmt.Sprintf("Your booking for %s is confirmed", b.EventDate), b.ID)
	case availability.StatusCancelled:
		s.notify(ctx, b.ClientUserID, notification.KindBookingCancelled,
			fmt.Sprintf("Your booking for %s was cancelled", b.EventDate), b.ID)
		s.notify(ctx, vendorOwnerID(ctx, s.vendorService, b.VendorID), notification.KindBookingCancelled,
			fmt.Sprintf("Booking for %s was cancelled", b.EventDate), b.ID)
	}

	return b, nil
}

// notify is best effort: a failed notification never fails the booking
// operation that triggered it.
func (s *service) notify(ctx context.Context, userID string, kind notification.Kind, message, bookingID string) {
	if s.notifier == nil || userID == "" {
		return
	}
	if _, err := s.notifier.Create(ctx, notification.CreateRequest{
		UserID:    userID,
		Kind:      kind,
		Message:   message,
		BookingID: &bookingID,
	}); err != nil {
		log.Printf("booking: notification %s for user %s failed: %v", kind, userID, err)
	}
}

func vendorOwnerID(ctx context.Context, vendorSvc vendors.Service, vendorID string) string {
	v, err := vendorSvc.GetByID(ctx, vendorID)
	if err != nil {
		return ""
	}
	return v.OwnerUserID
}

func (s *service) checkCapacity(ctx context.Context, b *Booking) error {
	info, err := s.vendorService.CalendarInfo(ctx, b.VendorID)
	if err != nil {
		return err
	}

	result, err := s.avail.Range(ctx, availability.RangeRequest{
		VendorID:  b.VendorID,
		Start:     b.EventDate,
		End:       b.EventDate,
		Capacity:  info.Capacity,
		Occupying: availability.DefaultOccupying(),
		Location:  info.Location,
	})
	if err != nil {
		return err
	}
	if result.Degraded {
		log.Printf("booking: availability degraded for vendor %s, confirming %s unchecked", b.VendorID, b.ID)
		return nil
	}
	if day, ok := result.Days[b.EventDate]; ok && !day.IsAvailable {
		return ErrDateUnavailable
	}
	return nil
}

func (s *service) CompletePastConfirmed(ctx context.Context, now time.Time) (int, error) {
	cutoff := availability.MakeDateKey(now, time.UTC)
	return s.repo.CompleteBefore(ctx, cutoff)
}

func (s *service) ExpireStalePending(ctx context.Context, now time.Time, maxAge time.Duration) (int, error) {
	return s.repo.CancelPendingBefore(ctx, now.Add(-maxAge))
}

func validStatus(status availability.BookingStatus) bool {
	for _, v := range availability.ValidBookingStatuses {
		if status == v {
			return true
		}
	}
	return false
}
