package relay

import (
	"time"

	"github.com/google/uuid"
)

// MediaPlaceholder is recorded in the ledger instead of any non-text payload.
// The raw payload never reaches the core.
const MediaPlaceholder = "Media message"

// User is a registry record. IDs are assigned by the transport side and are
// immutable; records are deactivated, never deleted.
type User struct {
	ID          int64
	DisplayName string
	Handle      string
	JoinedAt    time.Time
	Active      bool
	Messages    []Message
}

// Message is one entry of a user's append-only timeline.
type Message struct {
	ID           uuid.UUID
	Text         string
	At           time.Time
	FromOperator bool
}

// Candidate is one reply-target choice presented to the operator.
type Candidate struct {
	ID          int64
	DisplayName string
}

// Stats aggregates the registry for the operator. AverageMessages is 0 when
// there are no active users.
type Stats struct {
	TotalUsers      int
	TotalMessages   int
	AverageMessages float64
}
