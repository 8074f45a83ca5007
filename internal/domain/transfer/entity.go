package domain_transfer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Attempt is one user-driven cycle of OTP issuance through transfer
// submission. The state and the form fields live together so that a submit
// always acts on the combination the user actually sees.
type Attempt struct {
	id uuid.UUID

	state State
	// resume is the state restored when validation rejects a request.
	resume State

	account string
	amount  string
	otp     string

	message string

	createdAt time.Time
	updatedAt time.Time

	pendingEvents []DomainEvent
}

type NewParams struct {
	AttemptID uuid.UUID
	Account   string
	Amount    string
	OTP       string
	Now       time.Time
}

func New(p NewParams) (*Attempt, error) {
	if p.AttemptID == uuid.Nil {
		return nil, ErrInvalidAttemptID
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	a := &Attempt{
		id:        p.AttemptID,
		state:     StateIdle,
		account:   p.Account,
		amount:    p.Amount,
		otp:       p.OTP,
		createdAt: p.Now,
		updatedAt: p.Now,
	}

	a.raise(AttemptStarted{
		At:        p.Now,
		AttemptID: a.id,
	})

	return a, nil
}

// Next starts a fresh attempt that inherits the current form fields.
func (a *Attempt) Next(id uuid.UUID, now time.Time) (*Attempt, error) {
	if a.state.InFlight() {
		return nil, ErrAttemptBusy
	}

	return New(NewParams{
		AttemptID: id,
		Account:   a.account,
		Amount:    a.amount,
		OTP:       a.otp,
		Now:       now,
	})
}

func (a *Attempt) SetAccount(account string, now time.Time) error {
	return a.edit(func() { a.account = account }, now)
}

func (a *Attempt) SetAmount(amount string, now time.Time) error {
	return a.edit(func() { a.amount = amount }, now)
}

func (a *Attempt) SetOTP(otp string, now time.Time) error {
	return a.edit(func() { a.otp = otp }, now)
}

func (a *Attempt) edit(apply func(), now time.Time) error {
	if a.state.InFlight() {
		return ErrAttemptBusy
	}

	apply()
	a.touch(now)

	return nil
}

func (a *Attempt) BeginOtpRequest(now time.Time) error {
	if a.state.InFlight() {
		return ErrAttemptBusy
	}

	if a.state == StateValidating || a.state.IsFinal() {
		return ErrInvalidStateTransition
	}

	a.state = StateOtpPending
	a.touch(now)

	a.raise(OtpRequested{
		At:        a.updatedAt,
		AttemptID: a.id,
	})

	return nil
}

func (a *Attempt) MarkOtpIssued(message string, now time.Time) error {
	if a.state != StateOtpPending {
		return ErrInvalidStateTransition
	}

	a.state = StateOtpIssued
	a.message = message
	a.touch(now)

	a.raise(OtpIssued{
		At:        a.updatedAt,
		AttemptID: a.id,
	})

	return nil
}

func (a *Attempt) MarkOtpFailed(message, reason string, now time.Time) error {
	if a.state != StateOtpPending {
		return ErrInvalidStateTransition
	}

	a.state = StateOtpFailed
	a.message = message
	a.touch(now)

	a.raise(OtpRequestFailed{
		At:        a.updatedAt,
		AttemptID: a.id,
		Reason:    strings.TrimSpace(reason),
	})

	return nil
}

// BeginValidation freezes the form into a Request. The previous state is
// remembered so a rejection can return to it.
func (a *Attempt) BeginValidation(now time.Time) (Request, error) {
	if a.state.InFlight() {
		return Request{}, ErrAttemptBusy
	}

	if a.state == StateValidating || a.state.IsFinal() {
		return Request{}, ErrInvalidStateTransition
	}

	a.resume = a.state
	a.state = StateValidating
	a.touch(now)

	return a.Request(), nil
}

func (a *Attempt) Reject(message string, now time.Time) error {
	if a.state != StateValidating {
		return ErrInvalidStateTransition
	}

	a.state = a.resume
	a.resume = ""
	a.message = message
	a.touch(now)

	a.raise(TransferRejected{
		At:        a.updatedAt,
		AttemptID: a.id,
		Reason:    message,
	})

	return nil
}

func (a *Attempt) BeginSubmit(now time.Time) error {
	if a.state != StateValidating {
		return ErrInvalidStateTransition
	}

	a.state = StateSubmitting
	a.resume = ""
	a.touch(now)

	a.raise(TransferSubmitted{
		At:        a.updatedAt,
		AttemptID: a.id,
		Account:   strings.TrimSpace(a.account),
		Amount:    strings.TrimSpace(a.amount),
	})

	return nil
}

// Complete records the server's confirmation and clears the form.
func (a *Attempt) Complete(message string, now time.Time) error {
	if a.state != StateSubmitting {
		return ErrInvalidStateTransition
	}

	account := strings.TrimSpace(a.account)
	amount := strings.TrimSpace(a.amount)

	a.state = StateCompleted
	a.message = message
	a.account = ""
	a.amount = ""
	a.otp = ""
	a.touch(now)

	a.raise(AttemptCompleted{
		At:        a.updatedAt,
		AttemptID: a.id,
		Account:   account,
		Amount:    amount,
		Message:   message,
	})

	return nil
}

// FailSubmit passes through SUBMIT_FAILED and settles back on OTP_ISSUED with
// the form untouched, so the user can retry with the same OTP.
func (a *Attempt) FailSubmit(message, reason string, now time.Time) error {
	if a.state != StateSubmitting {
		return ErrInvalidStateTransition
	}

	a.state = StateSubmitFailed
	a.message = message
	a.touch(now)

	a.raise(TransferFailed{
		At:        a.updatedAt,
		AttemptID: a.id,
		Reason:    strings.TrimSpace(reason),
	})

	a.state = StateOtpIssued

	return nil
}

func (a *Attempt) PullEvents() []DomainEvent {
	if len(a.pendingEvents) == 0 {
		return nil
	}

	ev := make([]DomainEvent, len(a.pendingEvents))
	copy(ev, a.pendingEvents)

	a.pendingEvents = a.pendingEvents[:0]

	return ev
}

func (a *Attempt) raise(event DomainEvent) {
	a.pendingEvents = append(a.pendingEvents, event)
}

func (a *Attempt) touch(now time.Time) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	a.updatedAt = now
}

func (a *Attempt) Request() Request {
	return Request{Account: a.account, Amount: a.amount, OTP: a.otp}
}

func (a *Attempt) ID() uuid.UUID { return a.id }

func (a *Attempt) State() State { return a.state }

func (a *Attempt) Account() string { return a.account }

func (a *Attempt) Amount() string { return a.amount }

func (a *Attempt) OTP() string { return a.otp }

func (a *Attempt) Message() string { return a.message }

func (a *Attempt) CreatedAt() time.Time { return a.createdAt }

func (a *Attempt) UpdatedAt() time.Time { return a.updatedAt }
