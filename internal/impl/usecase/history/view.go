package impl_history

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domain_transaction "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transaction"
	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"

	"golang.org/x/sync/singleflight"
)

var ErrRefreshFailed = errors.New("history: refresh failed")

const flightKey = "transactions"

// ViewImpl caches the remote transaction ledger. Concurrent refreshes share a
// single fetch. A fetch only lands if no later-started fetch has already
// landed, so the cache never moves backwards.
type ViewImpl struct {
	bank port_banking.Service
	log  logging.Logger

	group singleflight.Group

	mu      sync.RWMutex
	items   []domain_transaction.Transaction
	started uint64
	applied uint64
}

func NewViewImpl(bank port_banking.Service, log logging.Logger) *ViewImpl {
	return &ViewImpl{
		bank: bank,
		log:  log.With("component", "history_view"),
	}
}

// Refresh replaces the cache with the service's current ledger. On failure
// the previous rows are kept.
func (v *ViewImpl) Refresh(ctx context.Context) error {
	_, err, shared := v.group.Do(flightKey, func() (any, error) {
		return nil, v.fetch(ctx)
	})
	if err != nil {
		v.log.Error(ctx, "failed to load transactions", "error", err, "shared", shared)
		return fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	return nil
}

func (v *ViewImpl) Transactions() []domain_transaction.Transaction {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return append([]domain_transaction.Transaction(nil), v.items...)
}

// HandleAttemptCompleted refreshes the ledger after a confirmed transfer.
func (v *ViewImpl) HandleAttemptCompleted(ctx context.Context, event domain_transfer.DomainEvent) error {
	if event.EventName() != domain_transfer.EventAttemptCompleted {
		return nil
	}

	// A fetch already in flight may predate the transfer; start a new one.
	v.group.Forget(flightKey)

	return v.Refresh(ctx)
}

func (v *ViewImpl) fetch(ctx context.Context) error {
	v.mu.Lock()
	v.started++
	seq := v.started
	v.mu.Unlock()

	items, err := v.bank.ListTransactions(ctx)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq > v.applied {
		v.items = append([]domain_transaction.Transaction(nil), items...)
		v.applied = seq
	}

	return nil
}
