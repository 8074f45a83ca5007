package impl_transfer

import (
	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	port_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/otp"
)

// Validator is the gate every transfer passes before any network call.
// The first failing rule wins. Amount is only checked for presence; range and
// balance checks belong to the remote service.
type Validator struct{}

func (Validator) Validate(req domain_transfer.Request, verifier port_otp.Verifier) error {
	n := req.Normalized()

	if n.Account == "" || n.Amount == "" || n.OTP == "" {
		return RejectMissingFields
	}

	if verifier == nil || !verifier.Verify(n.OTP) {
		return RejectInvalidOTP
	}

	return nil
}
