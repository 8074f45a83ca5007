// Package port_platform abstracts time and identifier generation so use cases
// stay deterministic under test.
package port_platform

import (
	"time"

	"github.com/google/uuid"
)

type Clock interface {
	Now() time.Time
}

// IDGenerator mints attempt identifiers.
type IDGenerator interface {
	NewUUID() uuid.UUID
}
