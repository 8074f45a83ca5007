package port_beneficiary

import (
	"context"

	domain_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/beneficiary"
)

const (
	MsgMissingFields = "Please enter name and account number"
	MsgAdded         = "Beneficiary added successfully!"
	MsgRejected      = "Failed to add beneficiary"
	MsgAddFailed     = "Add beneficiary failed"
)

// Draft holds the add-beneficiary input fields.
type Draft struct {
	Name    string
	Account string
}

type AddOutput struct {
	Added       bool
	Beneficiary domain_beneficiary.Beneficiary
	Message     string
}

type Registry interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, name, account string) (AddOutput, error)
	List() []domain_beneficiary.Beneficiary
	Find(id int64) (domain_beneficiary.Beneficiary, bool)
	Draft() Draft
}
