package verification

import (
	"net/http"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrInvalidChannel = apperror.New(http.StatusBadRequest, "channel must be email or sms")
	ErrCodeMismatch   = apperror.New(http.StatusBadRequest, "verification code is invalid or expired")
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

func validChannel(channel string) bool {
	return channel == ChannelEmail || channel == ChannelSMS
}
