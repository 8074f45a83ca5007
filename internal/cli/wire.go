package cli

import (
	"io"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/gateway/eventbus"
	impl_platform "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/platform"
	impl_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/usecase/beneficiary"
	impl_history "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/usecase/history"
	impl_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/usecase/otp"
	impl_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/usecase/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"
)

// Build wires the use cases around bank and returns a ready App.
func Build(bank port_banking.Service, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	clock := impl_platform.SystemClock{}
	ids := impl_platform.UUIDGenerator{}
	bus := eventbus.New()

	session := impl_otp.NewSessionImpl(bank, clock, log)
	registry := impl_beneficiary.NewRegistryImpl(bank, log)
	history := impl_history.NewViewImpl(bank, log)

	bus.Subscribe(domain_transfer.EventAttemptCompleted, history.HandleAttemptCompleted)

	controller, err := impl_transfer.NewControllerImpl(bank, session, registry, bus, clock, ids, log)
	if err != nil {
		return nil, err
	}

	return NewApp(controller, registry, history, log, in, out), nil
}
