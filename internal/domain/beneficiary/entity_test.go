package domain_beneficiary_test

import (
	"errors"
	"testing"

	domain_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/beneficiary"
)

func TestNew(t *testing.T) {
	t.Run("creates beneficiary with trimmed fields", func(t *testing.T) {
		b, err := domain_beneficiary.New(9, " Alex ", "1234567890 ")

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if b.ID() != 9 {
			t.Errorf("expected id 9, got %d", b.ID())
		}

		if b.Name() != "Alex" {
			t.Errorf("expected name Alex, got %q", b.Name())
		}

		if b.Account() != "1234567890" {
			t.Errorf("expected account 1234567890, got %q", b.Account())
		}
	})

	errorTests := []struct {
		name      string
		id        int64
		bName     string
		account   string
		wantError error
	}{
		{name: "zero id", id: 0, bName: "Alex", account: "1", wantError: domain_beneficiary.ErrInvalidID},
		{name: "negative id", id: -3, bName: "Alex", account: "1", wantError: domain_beneficiary.ErrInvalidID},
		{name: "blank name", id: 1, bName: "  ", account: "1", wantError: domain_beneficiary.ErrMissingName},
		{name: "empty account", id: 1, bName: "Alex", account: "", wantError: domain_beneficiary.ErrMissingAccount},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain_beneficiary.New(tt.id, tt.bName, tt.account)

			if !errors.Is(err, tt.wantError) {
				t.Errorf("expected error %v, got %v", tt.wantError, err)
			}
		})
	}
}
