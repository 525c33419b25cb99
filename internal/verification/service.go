package verification

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/user"
)

type Service interface {
	// Issue generates a fresh code for the user/channel pair and hands it
	// to the sender. Any previous code for the pair is invalidated.
	Issue(ctx context.Context, userID, channel string) error

	// Check consumes the code: on a match the user is marked verified on
	// that channel and the code cannot be reused.
	Check(ctx context.Context, userID, channel, code string) error
}

// Sender delivers a code to the user out of band. The local implementation
// logs the code; production wires an email/SMS provider here.
type Sender interface {
	Send(ctx context.Context, userID, channel, code string) error
}

// LogSender writes codes to the application log. Development only.
type LogSender struct{}

func (LogSender) Send(_ context.Context, userID, channel, code string) error {
	log.Printf("verification: code for user %s via %s: %s", userID, channel, code)
	return nil
}

type service struct {
	store       CodeStore
	userService user.Service
	sender      Sender
	ttl         time.Duration
}

func NewService(store CodeStore, userService user.Service, sender Sender, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &service{
		store:       store,
		userService: userService,
		sender:      sender,
		ttl:         ttl,
	}
}

func (s *service) Issue(ctx context.Context, userID, channel string) error {
	if !validChannel(channel) {
		return ErrInvalidChannel
	}
	if _, err := s.userService.GetByID(ctx, userID); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("generate verification code failed: %w", err)
	}

	if err := s.store.Put(ctx, userID, channel, code, s.ttl); err != nil {
		return err
	}
	return s.sender.Send(ctx, userID, channel, code)
}

func (s *service) Check(ctx context.Context, userID, channel, code string) error {
	if !validChannel(channel) {
		return ErrInvalidChannel
	}

	stored, err := s.store.Get(ctx, userID, channel)
	if err != nil {
		return err
	}
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return ErrCodeMismatch
	}

	if err := s.userService.MarkVerified(ctx, userID, channel); err != nil {
		return err
	}
	return s.store.Delete(ctx, userID, channel)
}

// generateCode returns a 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
