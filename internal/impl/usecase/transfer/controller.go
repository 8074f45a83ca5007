package impl_transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	domain_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/beneficiary"
	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/messaging"
	port_platform "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/platform"
	port_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/otp"
	port_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/transfer"
)

type BeneficiaryLookup interface {
	Find(id int64) (domain_beneficiary.Beneficiary, bool)
}

// ControllerImpl drives one attempt at a time through OTP issuance and
// submission. The mutex is never held across a remote call; the attempt's
// in-flight states are what keep overlapping requests out.
type ControllerImpl struct {
	bank          port_banking.Service
	otp           port_otp.Session
	beneficiaries BeneficiaryLookup
	events        messaging.Publisher
	clock         port_platform.Clock
	ids           port_platform.IDGenerator
	validator     Validator
	log           logging.Logger

	mu      sync.Mutex
	attempt *domain_transfer.Attempt
}

func NewControllerImpl(
	bank port_banking.Service,
	otp port_otp.Session,
	beneficiaries BeneficiaryLookup,
	events messaging.Publisher,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	log logging.Logger,
) (*ControllerImpl, error) {
	attempt, err := domain_transfer.New(domain_transfer.NewParams{
		AttemptID: ids.NewUUID(),
		Now:       clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &ControllerImpl{
		bank:          bank,
		otp:           otp,
		beneficiaries: beneficiaries,
		events:        events,
		clock:         clock,
		ids:           ids,
		log:           log.With("component", "transfer_controller"),
		attempt:       attempt,
	}, nil
}

func (c *ControllerImpl) SetAccount(account string) error {
	_, err := c.mutate(context.Background(), func(now time.Time) error {
		return c.attempt.SetAccount(account, now)
	})
	return err
}

// SelectBeneficiary fills the account field from a registered beneficiary.
func (c *ControllerImpl) SelectBeneficiary(id int64) error {
	b, ok := c.beneficiaries.Find(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBeneficiary, id)
	}

	return c.SetAccount(b.Account())
}

func (c *ControllerImpl) SetAmount(amount string) error {
	_, err := c.mutate(context.Background(), func(now time.Time) error {
		return c.attempt.SetAmount(amount, now)
	})
	return err
}

func (c *ControllerImpl) SetOTP(otp string) error {
	_, err := c.mutate(context.Background(), func(now time.Time) error {
		return c.attempt.SetOTP(otp, now)
	})
	return err
}

func (c *ControllerImpl) RequestOTP(ctx context.Context) (port_transfer.Result, error) {
	res, err := c.mutate(ctx, func(now time.Time) error {
		if err := c.rollover(now); err != nil {
			return err
		}
		return c.attempt.BeginOtpRequest(now)
	})
	if err != nil {
		return res, err
	}

	out, reqErr := c.otp.Request(ctx)

	res, err = c.mutate(ctx, func(now time.Time) error {
		if reqErr != nil {
			return c.attempt.MarkOtpFailed(out.Message, reqErr.Error(), now)
		}
		return c.attempt.MarkOtpIssued(out.Message, now)
	})

	return res, errors.Join(reqErr, err)
}

func (c *ControllerImpl) Submit(ctx context.Context) (port_transfer.Result, error) {
	var in port_banking.TransferInput

	res, err := c.mutate(ctx, func(now time.Time) error {
		if err := c.rollover(now); err != nil {
			return err
		}

		req, err := c.attempt.BeginValidation(now)
		if err != nil {
			return err
		}

		if verr := c.validator.Validate(req, c.otp); verr != nil {
			if err := c.attempt.Reject(verr.Error(), now); err != nil {
				return err
			}
			return verr
		}

		req = req.Normalized()
		in = port_banking.TransferInput{
			Account:        req.Account,
			Amount:         req.Amount,
			OTP:            req.OTP,
			IdempotencyKey: IdempotencyKey(c.attempt.ID(), req),
		}

		return c.attempt.BeginSubmit(now)
	})
	if err != nil {
		return res, err
	}

	out, submitErr := c.bank.SubmitTransfer(ctx, in)
	if submitErr != nil {
		msg := port_transfer.MsgTransferFailed
		if serverMsg, ok := port_banking.ServerMessage(submitErr); ok {
			msg = serverMsg
		}

		c.log.Error(ctx, "transfer failed", "error", submitErr)

		res, err = c.mutate(ctx, func(now time.Time) error {
			return c.attempt.FailSubmit(msg, submitErr.Error(), now)
		})

		return res, errors.Join(fmt.Errorf("%w: %w", ErrSubmitFailed, submitErr), err)
	}

	c.otp.Invalidate()

	msg := strings.TrimSpace(out.Message)
	if msg == "" {
		msg = port_transfer.MsgTransferCompleted
	}

	return c.mutate(ctx, func(now time.Time) error {
		return c.attempt.Complete(msg, now)
	})
}

func (c *ControllerImpl) Snapshot() port_transfer.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return port_transfer.Snapshot{
		AttemptID: c.attempt.ID(),
		State:     c.attempt.State(),
		Account:   c.attempt.Account(),
		Amount:    c.attempt.Amount(),
		OTP:       c.attempt.OTP(),
		Message:   c.attempt.Message(),
	}
}

// rollover replaces a completed attempt with a fresh one. Caller holds c.mu.
func (c *ControllerImpl) rollover(now time.Time) error {
	if !c.attempt.State().IsFinal() {
		return nil
	}

	next, err := c.attempt.Next(c.ids.NewUUID(), now)
	if err != nil {
		return err
	}

	c.attempt = next
	return nil
}

// mutate applies fn under the lock, then publishes whatever events it raised
// once the lock is released.
func (c *ControllerImpl) mutate(ctx context.Context, fn func(now time.Time) error) (port_transfer.Result, error) {
	c.mu.Lock()
	err := fn(c.clock.Now())
	res := port_transfer.Result{
		State:   c.attempt.State(),
		Message: c.attempt.Message(),
	}
	events := c.attempt.PullEvents()
	c.mu.Unlock()

	c.publish(ctx, events)

	return res, err
}

func (c *ControllerImpl) publish(ctx context.Context, events []domain_transfer.DomainEvent) {
	for _, ev := range events {
		c.log.Debug(ctx, "attempt event", "event", ev.EventName(), "attempt_id", ev.AggregateID())

		if err := c.events.Publish(ctx, ev); err != nil {
			c.log.Warn(ctx, "event handler failed", "event", ev.EventName(), "error", err)
		}
	}
}
