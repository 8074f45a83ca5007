package impl_transfer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/google/uuid"
)

// IdempotencyKey derives the key sent with a transfer submission. Retries of
// the same attempt with the same payload produce the same key.
func IdempotencyKey(attemptID uuid.UUID, req domain_transfer.Request) string {
	n := req.Normalized()

	payload := fmt.Sprintf("%s|%s|%s|%s", attemptID, n.Account, n.Amount, n.OTP)

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
