package domain_transfer

type State string

const (
	StateIdle         State = "IDLE"
	StateOtpPending   State = "OTP_PENDING"
	StateOtpIssued    State = "OTP_ISSUED"
	StateOtpFailed    State = "OTP_FAILED"
	StateValidating   State = "VALIDATING"
	StateSubmitting   State = "SUBMITTING"
	StateSubmitFailed State = "SUBMIT_FAILED"
	StateCompleted    State = "COMPLETED"
)

// InFlight reports whether a remote call is outstanding for the attempt.
func (s State) InFlight() bool {
	return s == StateOtpPending || s == StateSubmitting
}

func (s State) IsFinal() bool {
	return s == StateCompleted
}
