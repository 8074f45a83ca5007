package domain_otp_test

import (
	"errors"
	"testing"
	"time"

	domain_otp "github.com/PedroCamargo-dev/funds-transfer-client/internal/domain/otp"
)

func TestChallenge_Matches(t *testing.T) {
	issuedAt := time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)

	challenge, err := domain_otp.NewChallenge(" 482913 ", issuedAt)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "exact value", candidate: "482913", want: true},
		{name: "surrounding whitespace", candidate: "\t482913  ", want: true},
		{name: "different digit", candidate: "482914", want: false},
		{name: "empty candidate", candidate: "", want: false},
		{name: "inner whitespace", candidate: "482 913", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := challenge.Matches(tt.candidate); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if !challenge.IssuedAt().Equal(issuedAt) {
		t.Errorf("expected issued at %v, got %v", issuedAt, challenge.IssuedAt())
	}
}

func TestChallenge_Consume(t *testing.T) {
	challenge, _ := domain_otp.NewChallenge("482913", time.Time{})

	consumed := challenge.Consume()

	if consumed.Matches("482913") {
		t.Error("expected consumed challenge not to match")
	}

	if !consumed.Consumed() {
		t.Error("expected consumed flag to be set")
	}

	if !challenge.Matches("482913") {
		t.Error("expected original value to be unaffected by Consume")
	}
}

func TestNewChallenge_RejectsBlankValue(t *testing.T) {
	_, err := domain_otp.NewChallenge("   ", time.Time{})

	if !errors.Is(err, domain_otp.ErrEmptyValue) {
		t.Errorf("expected error %v, got %v", domain_otp.ErrEmptyValue, err)
	}
}

func TestChallenge_ZeroValueNeverMatches(t *testing.T) {
	var challenge domain_otp.Challenge

	if challenge.Matches("") {
		t.Error("expected zero challenge not to match empty candidate")
	}
}
