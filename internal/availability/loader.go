package availability

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

// ErrSuperseded is returned when a newer load request was issued while
// this one was waiting or fetching. The caller must discard the result;
// the last requested range wins.
var ErrSuperseded = apperror.New(http.StatusConflict, "request superseded by a newer one")

// DefaultDebounce collapses rapid month navigation into a single fetch.
const DefaultDebounce = 150 * time.Millisecond

// Loader serializes month loads for a single calendar instance. Each call
// bumps a generation counter; any in-flight load whose generation is no
// longer current is discarded instead of merged, so a stale response can
// never overwrite a newer one.
type Loader struct {
	svc      *Service
	debounce time.Duration
	gen      atomic.Uint64
}

// NewLoader creates a Loader. debounce < 0 selects DefaultDebounce;
// 0 disables debouncing.
func NewLoader(svc *Service, debounce time.Duration) *Loader {
	if debounce < 0 {
		debounce = DefaultDebounce
	}
	return &Loader{svc: svc, debounce: debounce}
}

// Generation returns the latest issued generation. Mostly useful in tests
// and diagnostics.
func (l *Loader) Generation() uint64 {
	return l.gen.Load()
}

// Load fetches one month view. It waits out the debounce window first, so
// a burst of navigation events resolves to one fetch for the final month.
// Returns ErrSuperseded when another Load was issued after this one.
func (l *Loader) Load(ctx context.Context, req MonthRequest) (*MonthView, error) {
	gen := l.gen.Add(1)

	if l.debounce > 0 {
		timer := time.NewTimer(l.debounce)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
		if l.gen.Load() != gen {
			return nil, ErrSuperseded
		}
	}

	view, err := l.svc.Month(ctx, req)
	if err != nil {
		return nil, err
	}

	// Re-check after the fetch: a response for an outdated month is
	// discarded, not applied.
	if l.gen.Load() != gen {
		return nil, ErrSuperseded
	}
	return view, nil
}
