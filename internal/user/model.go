package user

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrInactiveUser       = apperror.New(http.StatusForbidden, "user is inactive")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
)

// User represents an account in the marketplace: a client planning a
// wedding, a vendor, or a platform admin.
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	DisplayName   *string
	Phone         *string
	Role          string // client | vendor | admin
	EmailVerified bool
	PhoneVerified bool
	CreatedAt     time.Time
	LastLoginAt   *time.Time
	IsActive      bool
}
