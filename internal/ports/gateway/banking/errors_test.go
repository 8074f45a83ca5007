package port_banking_test

import (
	"errors"
	"fmt"
	"testing"

	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"
)

func TestServerMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
		wantOK  bool
	}{
		{name: "wrapped service error with message", err: fmt.Errorf("submit: %w", &port_banking.ServiceError{StatusCode: 422, Message: " Insufficient funds "}), wantMsg: "Insufficient funds", wantOK: true},
		{name: "service error without message", err: &port_banking.ServiceError{StatusCode: 500}, wantMsg: "", wantOK: false},
		{name: "transport error", err: port_banking.ErrUnavailable, wantMsg: "", wantOK: false},
		{name: "plain error", err: errors.New("boom"), wantMsg: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := port_banking.ServerMessage(tt.err)

			if ok != tt.wantOK {
				t.Errorf("expected ok %v, got %v", tt.wantOK, ok)
			}

			if msg != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestServiceError_Error(t *testing.T) {
	err := &port_banking.ServiceError{StatusCode: 502}

	if err.Error() != "banking: service returned status 502" {
		t.Errorf("unexpected error text %q", err.Error())
	}
}
