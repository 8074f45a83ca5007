package port_otp

import (
	"context"
	"time"

	domain_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/otp"
)

const (
	MsgOtpSent   = "OTP sent successfully!"
	MsgOtpFailed = "Failed to send OTP"
)

type RequestOutput struct {
	Message  string
	IssuedAt time.Time
}

// Verifier is the part of a session the transfer validator depends on.
type Verifier interface {
	Verify(candidate string) bool
}

type Session interface {
	Verifier
	Request(ctx context.Context) (RequestOutput, error)
	Invalidate()
	Current() (domain_otp.Challenge, bool)
}
