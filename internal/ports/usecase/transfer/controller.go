package port_transfer

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/google/uuid"
)

const (
	MsgFillAllFields     = "Please fill all fields"
	MsgInvalidOTP        = "Invalid OTP"
	MsgTransferCompleted = "Transfer completed"
	MsgTransferFailed    = "Transfer failed"
)

// Snapshot is a read-only view of the current attempt for presentation.
type Snapshot struct {
	AttemptID uuid.UUID
	State     domain_transfer.State
	Account   string
	Amount    string
	OTP       string
	Message   string
}

type Result struct {
	State   domain_transfer.State
	Message string
}

type Controller interface {
	SetAccount(account string) error
	SelectBeneficiary(id int64) error
	SetAmount(amount string) error
	SetOTP(otp string) error
	RequestOTP(ctx context.Context) (Result, error)
	Submit(ctx context.Context) (Result, error)
	Snapshot() Snapshot
}
