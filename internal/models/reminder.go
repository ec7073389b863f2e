package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder for the reminders table. DueAt is stored in UTC. Sent is the
// idempotency marker: once true the reminder is never notified again.
type Reminder struct {
	ID        uuid.UUID
	DueAt     time.Time
	Title     string
	Body      string
	Category  string
	UserID    uuid.UUID
	AnimalID  *uuid.UUID
	Sent      bool
	CreatedAt time.Time
}
