package services

import (
	"time"

	"github.com/google/uuid"
)

type AlertKind string

const (
	AlertKindPregnancy AlertKind = "embarazo"
	AlertKindDeworming AlertKind = "desparasitacion"
	AlertKindReminder  AlertKind = "recordatorio"
)

// DueEvent is one notification the scanner found due. The dispatcher
// consumes these one at a time; it never goes back to the store to re-read
// the subject.
type DueEvent struct {
	Kind      AlertKind
	SubjectID uuid.UUID // animal id for herd alerts, reminder id otherwise

	RecipientEmail string
	RecipientName  string
	RecipientPhone string // reminders only; empty disables the SMS copy

	AnchorDate    time.Time
	DueDate       time.Time
	DaysRemaining int

	// Herd context
	AnimalCode  string
	PaddockID   uuid.UUID
	PaddockName string
	FarmName    string

	// Reminder context
	Title    string
	Body     string
	Category string
}
