package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicalProcedure for the medical_procedures table.
type MedicalProcedure struct {
	ID          uuid.UUID
	Date        time.Time
	Kind        string
	Description string
	Status      string
	AnimalID    uuid.UUID
	CreatedAt   time.Time
}
