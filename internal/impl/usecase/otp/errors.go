package impl_otp

import "errors"

var ErrIssueFailed = errors.New("otp: issuance failed")
