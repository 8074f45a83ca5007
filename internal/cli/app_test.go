package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/gateway/bankstub"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/gateway/httpbank"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubbedApp(t *testing.T, input string, opts ...bankstub.Option) (*App, *bytes.Buffer) {
	t.Helper()

	opts = append([]bankstub.Option{
		bankstub.WithOTPGenerator(func() (string, error) { return "482913", nil }),
	}, opts...)

	srv := httptest.NewServer(bankstub.NewServer(logging.Nop(), opts...).Router())
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	app, err := Build(httpbank.NewClient(srv.URL+"/api", 2*time.Second), logging.Nop(), strings.NewReader(input), &out)
	require.NoError(t, err)

	return app, &out
}

func TestApp_TransferSession(t *testing.T) {
	input := strings.Join([]string{
		"submit",
		"add Alice Smith ACC-1",
		"add",
		"",
		"",
		"beneficiaries",
		"select 1",
		"amount 250",
		"otp",
		"code 000000",
		"submit",
		"code 482913",
		"status",
		"submit",
		"history",
		"exit",
	}, "\n") + "\n"

	app, out := newStubbedApp(t, input)

	app.Run(context.Background())

	got := out.String()

	assert.Contains(t, got, port_transfer.MsgFillAllFields)
	assert.Contains(t, got, "Beneficiary added successfully!")
	assert.Contains(t, got, "Please enter name and account number")
	assert.Contains(t, got, "Alice Smith")
	assert.Contains(t, got, "Account set to ACC-1")
	assert.Contains(t, got, "OTP sent successfully!")
	assert.Contains(t, got, port_transfer.MsgInvalidOTP)
	assert.Contains(t, got, "otp:     ******")
	assert.NotContains(t, got, "otp:     482913")
	assert.Contains(t, got, "Transferred 250.00 to ACC-1")
	assert.Contains(t, got, "250.00")
	assert.Contains(t, got, "Bye!")

	snap := app.transfer.Snapshot()
	assert.Equal(t, domain_transfer.StateCompleted, snap.State)
	assert.Empty(t, snap.Account)

	require.Len(t, app.history.Transactions(), 1)
	assert.Equal(t, "ACC-1", app.history.Transactions()[0].Account)
}

func TestApp_SelectErrors(t *testing.T) {
	app, out := newStubbedApp(t, "select x\nselect 42\nexit\n")

	app.Run(context.Background())

	assert.Contains(t, out.String(), msgInvalidID)
	assert.Contains(t, out.String(), msgUnknownBenef)
}

func TestApp_ServiceDown(t *testing.T) {
	srv := httptest.NewServer(bankstub.NewServer(logging.Nop()).Router())
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	app, err := Build(httpbank.NewClient(url+"/api", time.Second), logging.Nop(), strings.NewReader("otp\nexit\n"), &out)
	require.NoError(t, err)

	app.Run(context.Background())

	assert.Contains(t, out.String(), msgLoadBeneficiaries)
	assert.Contains(t, out.String(), msgLoadTransactions)
	assert.Contains(t, out.String(), "Failed to send OTP")
	assert.Equal(t, domain_transfer.StateOtpFailed, app.transfer.Snapshot().State)
}

type busyController struct{ port_transfer.Controller }

func (busyController) RequestOTP(context.Context) (port_transfer.Result, error) {
	return port_transfer.Result{}, domain_transfer.ErrAttemptBusy
}

func (busyController) Submit(context.Context) (port_transfer.Result, error) {
	return port_transfer.Result{}, domain_transfer.ErrAttemptBusy
}

func (busyController) SetAmount(string) error { return domain_transfer.ErrAttemptBusy }

func TestApp_BusyMessages(t *testing.T) {
	var out bytes.Buffer
	app := &App{transfer: busyController{}, out: &out, log: logging.Nop()}

	assert.ErrorIs(t, app.RequestOTP(context.Background()), domain_transfer.ErrAttemptBusy)
	assert.ErrorIs(t, app.Submit(context.Background()), domain_transfer.ErrAttemptBusy)
	assert.ErrorIs(t, app.SetAmount([]string{"10"}), domain_transfer.ErrAttemptBusy)

	assert.Equal(t, 3, strings.Count(out.String(), msgBusy))
}
