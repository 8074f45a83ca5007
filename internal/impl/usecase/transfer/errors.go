package impl_transfer

import (
	"errors"

	port_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/transfer"
)

var (
	ErrUnknownBeneficiary = errors.New("transfer: unknown beneficiary")
	ErrSubmitFailed       = errors.New("transfer: submission failed")
)

// Rejection is a validation failure. Its text is the message shown to the user.
type Rejection string

func (r Rejection) Error() string { return string(r) }

const (
	RejectMissingFields Rejection = port_transfer.MsgFillAllFields
	RejectInvalidOTP    Rejection = port_transfer.MsgInvalidOTP
)
