package bankstub_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/gateway/bankstub"
	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, opts ...bankstub.Option) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(bankstub.NewServer(logging.Nop(), opts...).Router())
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, url string, body any, header http.Header) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return resp, out
}

func getList(t *testing.T, url string) []map[string]any {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func fixedOTP(v string) bankstub.Option {
	return bankstub.WithOTPGenerator(func() (string, error) { return v, nil })
}

func TestServer_Beneficiaries(t *testing.T) {
	srv := newTestServer(t, bankstub.WithBeneficiaries(bankstub.Beneficiary{Name: "Alice", Account: "ACC-1"}))

	list := getList(t, srv.URL+"/api/beneficiaries")
	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0]["name"])
	assert.EqualValues(t, 1, list[0]["id"])

	t.Run("add", func(t *testing.T) {
		resp, body := post(t, srv.URL+"/api/beneficiaries", map[string]string{"name": "Bob", "account": "ACC-2"}, nil)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["success"])

		b, ok := body["beneficiary"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 2, b["id"])
		assert.Equal(t, "ACC-2", b["account"])

		assert.Len(t, getList(t, srv.URL+"/api/beneficiaries"), 2)
	})

	t.Run("duplicate account", func(t *testing.T) {
		resp, body := post(t, srv.URL+"/api/beneficiaries", map[string]string{"name": "Bobby", "account": "ACC-2"}, nil)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Beneficiary already exists", body["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, body := post(t, srv.URL+"/api/beneficiaries", map[string]string{"name": " "}, nil)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	})
}

func TestServer_TransferFlow(t *testing.T) {
	now := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)
	srv := newTestServer(t, fixedOTP("482913"), bankstub.WithClock(func() time.Time { return now }))

	resp, body := post(t, srv.URL+"/api/otp/send", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "482913", body["otp"])

	resp, body = post(t, srv.URL+"/api/transfer", map[string]string{"account": "ACC-2", "amount": "250", "otp": "482914"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid OTP", body["message"])

	resp, _ = post(t, srv.URL+"/api/transfer", map[string]string{"account": "ACC-2", "amount": "0", "otp": "482913"}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body = post(t, srv.URL+"/api/transfer", map[string]string{"account": "ACC-2", "amount": "250", "otp": "482913"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Transferred 250.00 to ACC-2", body["message"])

	resp, _ = post(t, srv.URL+"/api/transfer", map[string]string{"account": "ACC-2", "amount": "250", "otp": "482913"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "otp must be single use")

	txs := getList(t, srv.URL+"/api/transactions")
	require.Len(t, txs, 1)
	assert.Equal(t, "ACC-2", txs[0]["account"])
	assert.Equal(t, "250", txs[0]["amount"])
	assert.Equal(t, now.Format(time.RFC3339), txs[0]["date"])
}

func TestServer_TransferIdempotencyKey(t *testing.T) {
	srv := newTestServer(t, fixedOTP("130405"))

	_, _ = post(t, srv.URL+"/api/otp/send", nil, nil)

	header := http.Header{}
	header.Set("Idempotency-Key", "attempt-1")

	payload := map[string]string{"account": "ACC-7", "amount": "12.5", "otp": "130405"}

	first, firstBody := post(t, srv.URL+"/api/transfer", payload, header)
	second, secondBody := post(t, srv.URL+"/api/transfer", payload, header)

	assert.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, firstBody["message"], secondBody["message"])

	assert.Len(t, getList(t, srv.URL+"/api/transactions"), 1)
}

func TestServer_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/transfer", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
