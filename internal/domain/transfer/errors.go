package domain_transfer

import "errors"

var (
	ErrInvalidAttemptID = errors.New("transfer: invalid attempt_id")

	ErrAttemptBusy            = errors.New("transfer: attempt has a request in flight")
	ErrInvalidStateTransition = errors.New("transfer: invalid state transition")
)
