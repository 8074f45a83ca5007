package bankstub

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingFields    = errors.New("bankstub: missing fields")
	ErrDuplicateAccount = errors.New("bankstub: beneficiary already exists")
	ErrInvalidOTP       = errors.New("bankstub: invalid otp")
	ErrInvalidAmount    = errors.New("bankstub: amount must be positive")
)

type Beneficiary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Account string `json:"account"`
}

type Transaction struct {
	ID      int64           `json:"id"`
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
}

// store is the in-memory ledger behind the stub. One OTP is live at a time and
// it is consumed by the first transfer that uses it.
type store struct {
	mu sync.Mutex

	now    func() time.Time
	newOTP func() (string, error)

	beneficiaries []Beneficiary
	transactions  []Transaction
	nextBenefID   int64
	nextTxID      int64

	otp      string
	otpValid bool

	// replies keyed by Idempotency-Key
	replies map[string]string
}

func newStore(now func() time.Time, newOTP func() (string, error)) *store {
	return &store{
		now:         now,
		newOTP:      newOTP,
		nextBenefID: 1,
		nextTxID:    1,
		replies:     make(map[string]string),
	}
}

func (s *store) listBeneficiaries() []Beneficiary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Beneficiary{}, s.beneficiaries...)
}

func (s *store) addBeneficiary(name, account string) (Beneficiary, error) {
	name = strings.TrimSpace(name)
	account = strings.TrimSpace(account)

	if name == "" || account == "" {
		return Beneficiary{}, ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.beneficiaries {
		if b.Account == account {
			return Beneficiary{}, ErrDuplicateAccount
		}
	}

	b := Beneficiary{ID: s.nextBenefID, Name: name, Account: account}
	s.nextBenefID++
	s.beneficiaries = append(s.beneficiaries, b)

	return b, nil
}

func (s *store) issueOTP() (string, error) {
	otp, err := s.newOTP()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.otp = otp
	s.otpValid = true
	s.mu.Unlock()

	return otp, nil
}

// transfer applies a transfer once per idempotency key. A replayed key gets
// the original reply without touching the ledger.
func (s *store) transfer(key, account string, amount decimal.Decimal, otp string) (string, error) {
	account = strings.TrimSpace(account)
	otp = strings.TrimSpace(otp)

	s.mu.Lock()
	defer s.mu.Unlock()

	if key != "" {
		if reply, ok := s.replies[key]; ok {
			return reply, nil
		}
	}

	if account == "" || otp == "" {
		return "", ErrMissingFields
	}

	if !s.otpValid || otp != s.otp {
		return "", ErrInvalidOTP
	}

	if !amount.IsPositive() {
		return "", ErrInvalidAmount
	}

	s.otpValid = false
	s.transactions = append(s.transactions, Transaction{
		ID:      s.nextTxID,
		Account: account,
		Amount:  amount,
		Date:    s.now().UTC(),
	})
	s.nextTxID++

	reply := fmt.Sprintf("Transferred %s to %s", amount.StringFixed(2), account)
	if key != "" {
		s.replies[key] = reply
	}

	return reply, nil
}

func (s *store) listTransactions() []Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Transaction{}, s.transactions...)
}

// randomOTP returns a uniformly random six-digit code.
func randomOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("bankstub: generate otp: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
