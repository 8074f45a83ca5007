package port_history

import (
	"context"

	domain_transaction "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transaction"
)

type View interface {
	Refresh(ctx context.Context) error
	Transactions() []domain_transaction.Transaction
}
