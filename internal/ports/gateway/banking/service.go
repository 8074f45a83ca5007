package port_banking

import (
	"context"

	domain_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/beneficiary"
	domain_transaction "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transaction"
)

type AddBeneficiaryInput struct {
	Name    string
	Account string
}

// AddBeneficiaryResult mirrors the service's business answer. A rejected add
// is not an error: Success is false and Message carries the server's reason.
type AddBeneficiaryResult struct {
	Success     bool
	Beneficiary domain_beneficiary.Beneficiary
	Message     string
}

type TransferInput struct {
	Account        string
	Amount         string
	OTP            string
	IdempotencyKey string
}

type TransferResult struct {
	Message string
}

// Service is the remote banking backend. It owns beneficiaries, OTP issuance,
// transfer execution and the transaction ledger.
type Service interface {
	ListBeneficiaries(ctx context.Context) ([]domain_beneficiary.Beneficiary, error)
	AddBeneficiary(ctx context.Context, in AddBeneficiaryInput) (AddBeneficiaryResult, error)
	IssueOTP(ctx context.Context) (string, error)
	SubmitTransfer(ctx context.Context, in TransferInput) (TransferResult, error)
	ListTransactions(ctx context.Context) ([]domain_transaction.Transaction, error)
}
