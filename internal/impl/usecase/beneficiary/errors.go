package impl_beneficiary

import "errors"

var (
	ErrMissingFields = errors.New("beneficiary: name and account are required")
	ErrRejected      = errors.New("beneficiary: rejected by service")
	ErrAddFailed     = errors.New("beneficiary: add failed")
	ErrLoadFailed    = errors.New("beneficiary: load failed")
)
