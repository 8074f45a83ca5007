// Package httpbank talks to the remote banking service over JSON/HTTP.
package httpbank

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	domain_beneficiary "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/beneficiary"
	domain_transaction "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/transaction"
	port_banking "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking"
)

const (
	DefaultBaseURL = "https://my-bank-backend.onrender.com/api"

	IdempotencyHeader = "Idempotency-Key"

	maxErrorBody = 64 << 10
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient swaps the underlying transport client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) ListBeneficiaries(ctx context.Context) ([]domain_beneficiary.Beneficiary, error) {
	var rows []beneficiaryDTO
	if err := c.do(ctx, http.MethodGet, "/beneficiaries", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]domain_beneficiary.Beneficiary, 0, len(rows))
	for _, row := range rows {
		b, err := domain_beneficiary.New(row.ID, row.Name, row.Account)
		if err != nil {
			return nil, fmt.Errorf("%w: beneficiary %d: %w", port_banking.ErrMalformedResponse, row.ID, err)
		}
		out = append(out, b)
	}

	return out, nil
}

// AddBeneficiary treats an error status that carries a server message as a
// rejection rather than a transport failure.
func (c *Client) AddBeneficiary(ctx context.Context, in port_banking.AddBeneficiaryInput) (port_banking.AddBeneficiaryResult, error) {
	var resp addBeneficiaryResponse

	err := c.do(ctx, http.MethodPost, "/beneficiaries", addBeneficiaryRequest{Name: in.Name, Account: in.Account}, nil, &resp)
	if err != nil {
		if msg, ok := port_banking.ServerMessage(err); ok {
			return port_banking.AddBeneficiaryResult{Success: false, Message: msg}, nil
		}
		return port_banking.AddBeneficiaryResult{}, err
	}

	if !resp.Success {
		return port_banking.AddBeneficiaryResult{Success: false, Message: strings.TrimSpace(resp.Message)}, nil
	}

	if resp.Beneficiary == nil {
		return port_banking.AddBeneficiaryResult{}, fmt.Errorf("%w: success without beneficiary", port_banking.ErrMalformedResponse)
	}

	b, err := domain_beneficiary.New(resp.Beneficiary.ID, resp.Beneficiary.Name, resp.Beneficiary.Account)
	if err != nil {
		return port_banking.AddBeneficiaryResult{}, fmt.Errorf("%w: %w", port_banking.ErrMalformedResponse, err)
	}

	return port_banking.AddBeneficiaryResult{
		Success:     true,
		Beneficiary: b,
		Message:     strings.TrimSpace(resp.Message),
	}, nil
}

func (c *Client) IssueOTP(ctx context.Context) (string, error) {
	var resp otpResponse
	if err := c.do(ctx, http.MethodPost, "/otp/send", nil, nil, &resp); err != nil {
		return "", err
	}

	otp := strings.TrimSpace(string(resp.OTP))
	if otp == "" {
		return "", fmt.Errorf("%w: missing otp", port_banking.ErrMalformedResponse)
	}

	return otp, nil
}

func (c *Client) SubmitTransfer(ctx context.Context, in port_banking.TransferInput) (port_banking.TransferResult, error) {
	header := http.Header{}
	if in.IdempotencyKey != "" {
		header.Set(IdempotencyHeader, in.IdempotencyKey)
	}

	var resp messageResponse
	body := transferRequest{Account: in.Account, Amount: in.Amount, OTP: in.OTP}

	if err := c.do(ctx, http.MethodPost, "/transfer", body, header, &resp); err != nil {
		return port_banking.TransferResult{}, err
	}

	return port_banking.TransferResult{Message: resp.text()}, nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]domain_transaction.Transaction, error) {
	var rows []transactionDTO
	if err := c.do(ctx, http.MethodGet, "/transactions", nil, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]domain_transaction.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain_transaction.Transaction{
			ID:      row.ID,
			Account: row.Account,
			Amount:  row.Amount,
			Date:    time.Time(row.Date),
		})
	}

	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, header http.Header, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("%w: base url is empty", port_banking.ErrUnavailable)
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", port_banking.ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return serviceError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s %s: empty body", port_banking.ErrMalformedResponse, method, path)
		}
		return fmt.Errorf("%w: %s %s: %w", port_banking.ErrMalformedResponse, method, path, err)
	}

	return nil
}

func serviceError(resp *http.Response) error {
	se := &port_banking.ServiceError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return se
	}

	var msg messageResponse
	if json.Unmarshal(raw, &msg) == nil {
		se.Message = msg.text()
	}

	return se
}
