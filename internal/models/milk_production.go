package models

import (
	"time"

	"github.com/google/uuid"
)

// MilkProduction for the milk_production table.
type MilkProduction struct {
	ID        uuid.UUID
	Date      time.Time
	Liters    float64
	AnimalID  uuid.UUID
	CreatedAt time.Time
}
