package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	domain_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"
	port_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/beneficiary"
	port_history "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/history"
	port_transfer "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/usecase/transfer"
)

const (
	msgBusy              = "Please wait for the current request to finish"
	msgLoadBeneficiaries = "Failed to load beneficiaries"
	msgLoadTransactions  = "Failed to load transactions"
	msgUnknownBenef      = "Unknown beneficiary"
	msgInvalidID         = "Beneficiary id must be a number"
)

var errInvalidID = errors.New("cli: invalid beneficiary id")

type App struct {
	transfer      port_transfer.Controller
	beneficiaries port_beneficiary.Registry
	history       port_history.View
	log           logging.Logger

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(
	transfer port_transfer.Controller,
	beneficiaries port_beneficiary.Registry,
	history port_history.View,
	log logging.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		transfer:      transfer,
		beneficiaries: beneficiaries,
		history:       history,
		log:           log.With("component", "cli"),
		reader:        bufio.NewReader(in),
		out:           out,
	}
}

// Run loads both caches once and then serves commands until the input ends.
func (a *App) Run(ctx context.Context) {
	if err := a.Reload(ctx); err != nil {
		a.log.Warn(ctx, "initial load incomplete", "error", err)
	}

	fmt.Fprintln(a.out, "Type 'help' for the list of commands.")
	runREPL(ctx, a, a.reader, a.out)
}

func (a *App) Status() string {
	s := a.transfer.Snapshot()

	otp := ""
	if s.OTP != "" {
		otp = strings.Repeat("*", len(s.OTP))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "state:   %s\n", s.State)
	fmt.Fprintf(&b, "account: %s\n", s.Account)
	fmt.Fprintf(&b, "amount:  %s\n", s.Amount)
	fmt.Fprintf(&b, "otp:     %s", otp)
	if s.Message != "" {
		fmt.Fprintf(&b, "\nmessage: %s", s.Message)
	}

	return b.String()
}

func (a *App) ListBeneficiaries() {
	items := a.beneficiaries.List()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No beneficiaries.")
		return
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tACCOUNT")
	for _, b := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", b.ID(), b.Name(), b.Account())
	}
	_ = tw.Flush()
}

func (a *App) Reload(ctx context.Context) error {
	var errs []error

	if err := a.beneficiaries.Load(ctx); err != nil {
		fmt.Fprintln(a.out, msgLoadBeneficiaries)
		errs = append(errs, err)
	}

	if err := a.history.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, msgLoadTransactions)
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// AddBeneficiary takes "add <name...> <account>" or prompts for both fields.
func (a *App) AddBeneficiary(ctx context.Context, args []string) error {
	var name, account string

	if len(args) >= 2 {
		name = strings.Join(args[:len(args)-1], " ")
		account = args[len(args)-1]
	} else {
		var err error
		if name, err = GetSimpleText(a.reader, "Beneficiary name", a.out); err != nil {
			return err
		}
		if account, err = GetSimpleText(a.reader, "Account number", a.out); err != nil {
			return err
		}
	}

	out, err := a.beneficiaries.Add(ctx, name, account)
	fmt.Fprintln(a.out, out.Message)

	return err
}

func (a *App) SelectBeneficiary(args []string) error {
	raw, err := a.argOrPrompt(args, "Beneficiary id")
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, msgInvalidID)
		return fmt.Errorf("%w: %q", errInvalidID, raw)
	}

	if err := a.transfer.SelectBeneficiary(id); err != nil {
		a.reportFormError(err, msgUnknownBenef)
		return err
	}

	fmt.Fprintf(a.out, "Account set to %s\n", a.transfer.Snapshot().Account)

	return nil
}

func (a *App) SetAccount(args []string) error {
	v, err := a.argOrPrompt(args, "Account number")
	if err != nil {
		return err
	}

	if err := a.transfer.SetAccount(v); err != nil {
		a.reportFormError(err, err.Error())
		return err
	}

	return nil
}

func (a *App) SetAmount(args []string) error {
	v, err := a.argOrPrompt(args, "Amount")
	if err != nil {
		return err
	}

	if err := a.transfer.SetAmount(v); err != nil {
		a.reportFormError(err, err.Error())
		return err
	}

	return nil
}

func (a *App) RequestOTP(ctx context.Context) error {
	res, err := a.transfer.RequestOTP(ctx)
	if errors.Is(err, domain_transfer.ErrAttemptBusy) {
		fmt.Fprintln(a.out, msgBusy)
		return err
	}

	fmt.Fprintln(a.out, res.Message)

	return err
}

// EnterCode sets the OTP field. Without an argument the code is read without
// echo.
func (a *App) EnterCode(args []string) error {
	var (
		code string
		err  error
	)

	if len(args) > 0 {
		code = strings.Join(args, " ")
	} else if code, err = GetSecret(a.reader, "OTP", a.out); err != nil {
		return err
	}

	if err := a.transfer.SetOTP(code); err != nil {
		a.reportFormError(err, err.Error())
		return err
	}

	return nil
}

func (a *App) Submit(ctx context.Context) error {
	res, err := a.transfer.Submit(ctx)
	if errors.Is(err, domain_transfer.ErrAttemptBusy) {
		fmt.Fprintln(a.out, msgBusy)
		return err
	}

	fmt.Fprintln(a.out, res.Message)

	return err
}

func (a *App) History(ctx context.Context) error {
	err := a.history.Refresh(ctx)
	if err != nil {
		fmt.Fprintln(a.out, msgLoadTransactions)
	}

	items := a.history.Transactions()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No transactions.")
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tACCOUNT\tAMOUNT\tDATE")
	for _, tx := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", tx.ID, tx.Account, tx.Amount.StringFixed(2), tx.Date.Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()

	return err
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) reportFormError(err error, fallback string) {
	if errors.Is(err, domain_transfer.ErrAttemptBusy) {
		fmt.Fprintln(a.out, msgBusy)
		return
	}
	fmt.Fprintln(a.out, fallback)
}
