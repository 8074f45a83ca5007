package domain_beneficiary

import (
	"errors"
	"strings"
)

var (
	ErrInvalidID      = errors.New("beneficiary: id must be > 0")
	ErrMissingName    = errors.New("beneficiary: name is required")
	ErrMissingAccount = errors.New("beneficiary: account is required")
)

// Beneficiary is a named payee account. The id is always the one assigned by
// the remote service.
type Beneficiary struct {
	id      int64
	name    string
	account string
}

func New(id int64, name, account string) (Beneficiary, error) {
	if id <= 0 {
		return Beneficiary{}, ErrInvalidID
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return Beneficiary{}, ErrMissingName
	}

	account = strings.TrimSpace(account)
	if account == "" {
		return Beneficiary{}, ErrMissingAccount
	}

	return Beneficiary{id: id, name: name, account: account}, nil
}

func (b Beneficiary) ID() int64 { return b.id }

func (b Beneficiary) Name() string { return b.name }

func (b Beneficiary) Account() string { return b.account }
