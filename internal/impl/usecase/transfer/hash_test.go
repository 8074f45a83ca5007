package impl_transfer_test

import (
	"testing"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	impl_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/usecase/transfer"
	"github.com/google/uuid"
)

func TestIdempotencyKey(t *testing.T) {
	id := uuid.New()
	req := domain_transfer.Request{Account: "ACC-2", Amount: "250", OTP: "482913"}

	key := impl_transfer.IdempotencyKey(id, req)

	if len(key) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(key))
	}

	t.Run("stable across whitespace", func(t *testing.T) {
		padded := domain_transfer.Request{Account: " ACC-2", Amount: "250 ", OTP: " 482913 "}
		if got := impl_transfer.IdempotencyKey(id, padded); got != key {
			t.Errorf("expected %q, got %q", key, got)
		}
	})

	t.Run("differs per attempt", func(t *testing.T) {
		if got := impl_transfer.IdempotencyKey(uuid.New(), req); got == key {
			t.Error("expected a different key for another attempt")
		}
	})

	t.Run("differs per payload", func(t *testing.T) {
		other := req
		other.Amount = "251"
		if got := impl_transfer.IdempotencyKey(id, other); got == key {
			t.Error("expected a different key for another amount")
		}
	})
}
