// Package outbox persists news-feed events transactionally and relays
// them to the message bus. Event logging is best effort for callers: a
// failed insert or publish never aborts the state transition that
// produced the event.
package outbox

import (
	"time"

	"github.com/google/uuid"
)

// Event is one append-only outbox row.
type Event struct {
	ID        uuid.UUID `json:"id"`
	EventType string    `json:"event_type"`
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
