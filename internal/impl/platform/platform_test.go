package impl_platform_test

import (
	"testing"
	"time"

	impl_platform "github.com/PedroCamargo-dev/funds-transfer-client/internal/impl/platform"
	port_platform "github.com/PedroCamargo-dev/funds-transfer-client/internal/ports/gateway/platform"
	"github.com/google/uuid"
)

var (
	_ port_platform.Clock       = impl_platform.SystemClock{}
	_ port_platform.IDGenerator = impl_platform.UUIDGenerator{}
)

func TestSystemClock_ReturnsUTC(t *testing.T) {
	now := impl_platform.SystemClock{}.Now()

	if now.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", now.Location())
	}
}

func TestUUIDGenerator_ReturnsDistinctIDs(t *testing.T) {
	gen := impl_platform.UUIDGenerator{}

	a, b := gen.NewUUID(), gen.NewUUID()

	if a == uuid.Nil || b == uuid.Nil {
		t.Fatal("expected non-nil uuids")
	}

	if a == b {
		t.Errorf("expected distinct uuids, got %v twice", a)
	}
}
