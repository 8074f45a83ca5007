// Package bankstub is an in-memory stand-in for the remote banking service.
// It serves the same JSON endpoints under /api.
package bankstub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/PedroCamargo-dev/funds-transfer-client/internal/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
)

type Option func(*Server)

// WithClock overrides the time stamped on new transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.store.now = now }
}

// WithOTPGenerator overrides the random six-digit generator.
func WithOTPGenerator(gen func() (string, error)) Option {
	return func(s *Server) { s.store.newOTP = gen }
}

// WithBeneficiaries seeds the beneficiary list.
func WithBeneficiaries(items ...Beneficiary) Option {
	return func(s *Server) {
		for _, b := range items {
			if _, err := s.store.addBeneficiary(b.Name, b.Account); err != nil {
				s.log.Warn(context.Background(), "skipping seed beneficiary", "account", b.Account, "error", err)
			}
		}
	}
}

type Server struct {
	store *store
	log   logging.Logger
}

func NewServer(log logging.Logger, opts ...Option) *Server {
	s := &Server{
		store: newStore(time.Now, randomOTP),
		log:   log.With("component", "bankstub"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/beneficiaries", s.handleListBeneficiaries)
		r.Post("/beneficiaries", s.handleAddBeneficiary)
		r.Post("/otp/send", s.handleSendOTP)
		r.Post("/transfer", s.handleTransfer)
		r.Get("/transactions", s.handleListTransactions)
	})

	return r
}

func (s *Server) handleListBeneficiaries(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listBeneficiaries())
}

type addBeneficiaryRequest struct {
	Name    string `json:"name"`
	Account string `json:"account"`
}

type addBeneficiaryResponse struct {
	Success     bool         `json:"success"`
	Beneficiary *Beneficiary `json:"beneficiary,omitempty"`
	Message     string       `json:"message,omitempty"`
}

func (s *Server) handleAddBeneficiary(w http.ResponseWriter, r *http.Request) {
	var req addBeneficiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, addBeneficiaryResponse{Message: "Invalid request body"})
		return
	}

	b, err := s.store.addBeneficiary(req.Name, req.Account)
	switch {
	case errors.Is(err, ErrMissingFields):
		writeJSON(w, http.StatusBadRequest, addBeneficiaryResponse{Message: "Name and account are required"})
		return
	case errors.Is(err, ErrDuplicateAccount):
		writeJSON(w, http.StatusConflict, addBeneficiaryResponse{Message: "Beneficiary already exists"})
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	s.log.Info(r.Context(), "beneficiary added", "beneficiary_id", b.ID)

	writeJSON(w, http.StatusCreated, addBeneficiaryResponse{Success: true, Beneficiary: &b})
}

func (s *Server) handleSendOTP(w http.ResponseWriter, r *http.Request) {
	otp, err := s.store.issueOTP()
	if err != nil {
		s.log.Error(r.Context(), "otp generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate OTP")
		return
	}

	s.log.Debug(r.Context(), "otp issued")

	writeJSON(w, http.StatusOK, map[string]string{"otp": otp})
}

type transferRequest struct {
	Account string          `json:"account"`
	Amount  decimal.Decimal `json:"amount"`
	OTP     string          `json:"otp"`
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := s.store.transfer(r.Header.Get("Idempotency-Key"), req.Account, req.Amount, req.OTP)
	switch {
	case errors.Is(err, ErrMissingFields):
		writeError(w, http.StatusBadRequest, "Account, amount and OTP are required")
		return
	case errors.Is(err, ErrInvalidOTP):
		writeError(w, http.StatusUnauthorized, "Invalid OTP")
		return
	case errors.Is(err, ErrInvalidAmount):
		writeError(w, http.StatusUnprocessableEntity, "Amount must be positive")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	s.log.Info(r.Context(), "transfer applied", "account", req.Account, "amount", req.Amount.String())

	writeJSON(w, http.StatusOK, map[string]string{"message": reply})
}

func (s *Server) handleListTransactions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listTransactions())
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.log.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
