package models

import (
	"time"

	"github.com/google/uuid"
)

// Farm for the farms table.
type Farm struct {
	ID          uuid.UUID
	Name        string
	Description string
	ImageURL    *string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
}

// Paddock for the paddocks table.
type Paddock struct {
	ID        uuid.UUID
	Name      string
	FarmID    uuid.UUID
	CreatedAt time.Time
}

// PaddockSummary is the read model for the farm dashboard: a paddock plus
// its herd size and average milk production.
type PaddockSummary struct {
	Paddock
	AnimalCount   int
	AvgMilkLiters float64
}
