package domain_otp

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyValue = errors.New("otp: issued value is empty")

// Challenge is one OTP issued by the remote service. The value is opaque to
// the client; only string equality after trimming is meaningful.
type Challenge struct {
	value    string
	issuedAt time.Time
	consumed bool
}

func NewChallenge(value string, issuedAt time.Time) (Challenge, error) {
	if strings.TrimSpace(value) == "" {
		return Challenge{}, ErrEmptyValue
	}

	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}

	return Challenge{value: value, issuedAt: issuedAt}, nil
}

// Matches compares candidate against the issued value. A consumed challenge
// never matches.
func (c Challenge) Matches(candidate string) bool {
	if c.consumed || c.value == "" {
		return false
	}

	return strings.TrimSpace(candidate) == strings.TrimSpace(c.value)
}

func (c Challenge) Consume() Challenge {
	c.consumed = true
	return c
}

func (c Challenge) Value() string { return c.value }

func (c Challenge) IssuedAt() time.Time { return c.issuedAt }

func (c Challenge) Consumed() bool { return c.consumed }
