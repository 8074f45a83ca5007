// Package mocks provides mock implementations for testing purposes.
package mocks

//go:generate mockgen -destination=mock_banking.go -package=mocks github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/banking Service
//go:generate mockgen -destination=mock_messaging.go -package=mocks github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/messaging Publisher
//go:generate mockgen -destination=mock_platform.go -package=mocks github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/platform Clock,IDGenerator
