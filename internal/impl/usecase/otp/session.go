package impl_otp

import (
	"context"
	"fmt"
	"sync"

	domain_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/otp"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"
	port_platform "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/platform"
	port_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/otp"
)

// SessionImpl holds at most one OTP challenge. Issuing a new challenge
// replaces the previous one for good.
type SessionImpl struct {
	bank  port_banking.Service
	clock port_platform.Clock
	log   logging.Logger

	mu        sync.Mutex
	challenge domain_otp.Challenge
	issued    bool
}

func NewSessionImpl(bank port_banking.Service, clock port_platform.Clock, log logging.Logger) *SessionImpl {
	return &SessionImpl{
		bank:  bank,
		clock: clock,
		log:   log.With("component", "otp_session"),
	}
}

func (s *SessionImpl) Request(ctx context.Context) (port_otp.RequestOutput, error) {
	value, err := s.bank.IssueOTP(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to send otp", "error", err)
		return port_otp.RequestOutput{Message: port_otp.MsgOtpFailed}, fmt.Errorf("%w: %w", ErrIssueFailed, err)
	}

	challenge, err := domain_otp.NewChallenge(value, s.clock.Now())
	if err != nil {
		s.log.Error(ctx, "otp response carried no value", "error", err)
		return port_otp.RequestOutput{Message: port_otp.MsgOtpFailed}, fmt.Errorf("%w: %w", ErrIssueFailed, err)
	}

	s.mu.Lock()
	s.challenge = challenge
	s.issued = true
	s.mu.Unlock()

	s.log.Debug(ctx, "otp issued", "issued_at", challenge.IssuedAt())

	return port_otp.RequestOutput{
		Message:  port_otp.MsgOtpSent,
		IssuedAt: challenge.IssuedAt(),
	}, nil
}

func (s *SessionImpl) Verify(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.issued && s.challenge.Matches(candidate)
}

// Invalidate consumes the held challenge so it can no longer authorize a
// transfer.
func (s *SessionImpl) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.issued {
		s.challenge = s.challenge.Consume()
	}
}

func (s *SessionImpl) Current() (domain_otp.Challenge, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.challenge, s.issued
}
