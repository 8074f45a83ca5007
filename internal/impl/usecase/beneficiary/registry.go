package impl_beneficiary

import (
	"context"
	"fmt"
	"strings"
	"sync"

	domain_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/beneficiary"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"
	port_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/beneficiary"
)

// RegistryImpl caches the beneficiaries known to the remote service. The
// cache is only ever replaced by a full load or extended by a confirmed add.
type RegistryImpl struct {
	bank port_banking.Service
	log  logging.Logger

	mu    sync.RWMutex
	items []domain_beneficiary.Beneficiary
	draft port_beneficiary.Draft
}

func NewRegistryImpl(bank port_banking.Service, log logging.Logger) *RegistryImpl {
	return &RegistryImpl{
		bank: bank,
		log:  log.With("component", "beneficiary_registry"),
	}
}

// Load replaces the cache with the service's list. On failure the previous
// cache is kept.
func (r *RegistryImpl) Load(ctx context.Context) error {
	items, err := r.bank.ListBeneficiaries(ctx)
	if err != nil {
		r.log.Error(ctx, "failed to load beneficiaries", "error", err)
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	r.mu.Lock()
	r.items = append([]domain_beneficiary.Beneficiary(nil), items...)
	r.mu.Unlock()

	r.log.Debug(ctx, "beneficiaries loaded", "count", len(items))

	return nil
}

func (r *RegistryImpl) Add(ctx context.Context, name, account string) (port_beneficiary.AddOutput, error) {
	r.mu.Lock()
	r.draft = port_beneficiary.Draft{Name: name, Account: account}
	r.mu.Unlock()

	name = strings.TrimSpace(name)
	account = strings.TrimSpace(account)

	if name == "" || account == "" {
		return port_beneficiary.AddOutput{Message: port_beneficiary.MsgMissingFields}, ErrMissingFields
	}

	res, err := r.bank.AddBeneficiary(ctx, port_banking.AddBeneficiaryInput{Name: name, Account: account})
	if err != nil {
		r.log.Error(ctx, "add beneficiary failed", "error", err)
		return port_beneficiary.AddOutput{Message: port_beneficiary.MsgAddFailed}, fmt.Errorf("%w: %w", ErrAddFailed, err)
	}

	if !res.Success {
		msg := strings.TrimSpace(res.Message)
		if msg == "" {
			msg = port_beneficiary.MsgRejected
		}
		return port_beneficiary.AddOutput{Message: msg}, ErrRejected
	}

	r.mu.Lock()
	r.upsert(res.Beneficiary)
	r.draft = port_beneficiary.Draft{}
	r.mu.Unlock()

	r.log.Info(ctx, "beneficiary added", "beneficiary_id", res.Beneficiary.ID())

	return port_beneficiary.AddOutput{
		Added:       true,
		Beneficiary: res.Beneficiary,
		Message:     port_beneficiary.MsgAdded,
	}, nil
}

func (r *RegistryImpl) List() []domain_beneficiary.Beneficiary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]domain_beneficiary.Beneficiary(nil), r.items...)
}

// Find returns the first cached beneficiary with the given id.
func (r *RegistryImpl) Find(id int64) (domain_beneficiary.Beneficiary, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.items {
		if b.ID() == id {
			return b, true
		}
	}

	return domain_beneficiary.Beneficiary{}, false
}

func (r *RegistryImpl) Draft() port_beneficiary.Draft {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.draft
}

// upsert replaces the cached entry with the same id, or appends. Caller holds r.mu.
func (r *RegistryImpl) upsert(b domain_beneficiary.Beneficiary) {
	for i := range r.items {
		if r.items[i].ID() == b.ID() {
			r.items[i] = b
			return
		}
	}

	r.items = append(r.items, b)
}
