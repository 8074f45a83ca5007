package domain_transfer

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventAttemptStarted    = "transfer.attempt_started"
	EventOtpRequested      = "transfer.otp_requested"
	EventOtpIssued         = "transfer.otp_issued"
	EventOtpRequestFailed  = "transfer.otp_request_failed"
	EventTransferRejected  = "transfer.rejected"
	EventTransferSubmitted = "transfer.submitted"
	EventTransferFailed    = "transfer.failed"
	EventAttemptCompleted  = "transfer.attempt_completed"
)

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
}

type AttemptStarted struct {
	At        time.Time
	AttemptID uuid.UUID
}

func (e AttemptStarted) EventName() string { return EventAttemptStarted }

func (e AttemptStarted) OccurredAt() time.Time { return e.At }

func (e AttemptStarted) AggregateID() uuid.UUID { return e.AttemptID }

type OtpRequested struct {
	At        time.Time
	AttemptID uuid.UUID
}

func (e OtpRequested) EventName() string { return EventOtpRequested }

func (e OtpRequested) OccurredAt() time.Time { return e.At }

func (e OtpRequested) AggregateID() uuid.UUID { return e.AttemptID }

type OtpIssued struct {
	At        time.Time
	AttemptID uuid.UUID
}

func (e OtpIssued) EventName() string { return EventOtpIssued }

func (e OtpIssued) OccurredAt() time.Time { return e.At }

func (e OtpIssued) AggregateID() uuid.UUID { return e.AttemptID }

type OtpRequestFailed struct {
	At        time.Time
	AttemptID uuid.UUID
	Reason    string
}

func (e OtpRequestFailed) EventName() string { return EventOtpRequestFailed }

func (e OtpRequestFailed) OccurredAt() time.Time { return e.At }

func (e OtpRequestFailed) AggregateID() uuid.UUID { return e.AttemptID }

type TransferRejected struct {
	At        time.Time
	AttemptID uuid.UUID
	Reason    string
}

func (e TransferRejected) EventName() string { return EventTransferRejected }

func (e TransferRejected) OccurredAt() time.Time { return e.At }

func (e TransferRejected) AggregateID() uuid.UUID { return e.AttemptID }

type TransferSubmitted struct {
	At        time.Time
	AttemptID uuid.UUID
	Account   string
	Amount    string
}

func (e TransferSubmitted) EventName() string { return EventTransferSubmitted }

func (e TransferSubmitted) OccurredAt() time.Time { return e.At }

func (e TransferSubmitted) AggregateID() uuid.UUID { return e.AttemptID }

type TransferFailed struct {
	At        time.Time
	AttemptID uuid.UUID
	Reason    string
}

func (e TransferFailed) EventName() string { return EventTransferFailed }

func (e TransferFailed) OccurredAt() time.Time { return e.At }

func (e TransferFailed) AggregateID() uuid.UUID { return e.AttemptID }

// AttemptCompleted is raised once the remote service has accepted a transfer.
type AttemptCompleted struct {
	At        time.Time
	AttemptID uuid.UUID
	Account   string
	Amount    string
	Message   string
}

func (e AttemptCompleted) EventName() string { return EventAttemptCompleted }

func (e AttemptCompleted) OccurredAt() time.Time { return e.At }

func (e AttemptCompleted) AggregateID() uuid.UUID { return e.AttemptID }
