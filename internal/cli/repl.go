package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const helpText = `Commands:
  status                 show the current transfer form
  beneficiaries          list saved beneficiaries
  reload                 reload beneficiaries and history
  add [name account]     add a beneficiary
  select <id>            use a beneficiary's account for the transfer
  account [value]        set the destination account
  amount [value]         set the amount
  otp                    request a one-time password
  code [value]           enter the one-time password
  submit                 submit the transfer
  history                refresh and show recent transactions
  exit                   leave the program`

// execIface is the command surface the REPL dispatches to. App implements it;
// tests use a recording fake.
type execIface interface {
	Status() string
	ListBeneficiaries()
	Reload(ctx context.Context) error
	AddBeneficiary(ctx context.Context, args []string) error
	SelectBeneficiary(args []string) error
	SetAccount(args []string) error
	SetAmount(args []string) error
	RequestOTP(ctx context.Context) error
	EnterCode(args []string) error
	Submit(ctx context.Context) error
	History(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit", or until ctx
// is done. Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprint(out, "transfer> ")

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(out, helpText)

		case "status":
			fmt.Fprintln(out, a.Status())

		case "beneficiaries", "ls":
			a.ListBeneficiaries()

		case "reload":
			_ = a.Reload(ctx)

		case "add":
			_ = a.AddBeneficiary(ctx, args)

		case "select":
			_ = a.SelectBeneficiary(args)

		case "account":
			_ = a.SetAccount(args)

		case "amount":
			_ = a.SetAmount(args)

		case "otp":
			_ = a.RequestOTP(ctx)

		case "code":
			_ = a.EnterCode(args)

		case "submit":
			_ = a.Submit(ctx)

		case "history":
			_ = a.History(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}
	}
}
