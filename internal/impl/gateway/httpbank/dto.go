package httpbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type beneficiaryDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Account string `json:"account"`
}

type addBeneficiaryRequest struct {
	Name    string `json:"name"`
	Account string `json:"account"`
}

type addBeneficiaryResponse struct {
	Success     bool            `json:"success"`
	Beneficiary *beneficiaryDTO `json:"beneficiary,omitempty"`
	Message     string          `json:"message,omitempty"`
}

type otpResponse struct {
	OTP otpValue `json:"otp"`
}

type transferRequest struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
	OTP     string `json:"otp"`
}

// messageResponse covers both success bodies and error bodies.
type messageResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (m messageResponse) text() string {
	if s := strings.TrimSpace(m.Message); s != "" {
		return s
	}
	return strings.TrimSpace(m.Error)
}

type transactionDTO struct {
	ID      int64           `json:"id"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Date    flexibleDate    `json:"date"`
}

// otpValue accepts the code as a JSON string or a JSON number.
type otpValue string

func (v *otpValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = otpValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("otp must be a string or a number: %w", err)
	}
	*v = otpValue(n.String())

	return nil
}

const dateOnly = "2006-01-02"

// flexibleDate accepts RFC 3339 timestamps and plain calendar dates.
type flexibleDate time.Time

func (d *flexibleDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	s = strings.TrimSpace(s)
	if s == "" {
		*d = flexibleDate{}
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, dateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = flexibleDate(t)
			return nil
		}
	}

	return fmt.Errorf("unrecognized date %q", s)
}
