package models

import (
	"time"

	"github.com/google/uuid"
)

// Animal for the animals table.
//
// PregnancyDate and DewormingDate are the alert anchors: a pregnancy anchor
// is cleared once its birth alert fires, a deworming anchor is advanced by
// the deworming interval so the schedule recurs.
type Animal struct {
	ID             uuid.UUID
	Code           string
	AgeYears       int
	Breed          string
	HealthNotes    string
	Vaccines       string
	PregnancyDate  *time.Time
	DewormingDate  *time.Time
	PaddockID      uuid.UUID
	VeterinarianID *uuid.UUID
	CreatedAt      time.Time
}

// AnimalWithMilkAvg is the paddock listing read model.
type AnimalWithMilkAvg struct {
	Animal
	AvgMilkLiters float64
}

// AnimalAlertRow is one row of the herd alert scan: an animal joined with
// its paddock, farm, and the farm owner's contact data. Owner fields are
// empty when the join found no owner; the scanner skips those rows.
type AnimalAlertRow struct {
	AnimalID      uuid.UUID
	Code          string
	PregnancyDate *time.Time
	DewormingDate *time.Time
	PaddockID     uuid.UUID
	PaddockName   string
	FarmName      string
	OwnerName     string
	OwnerEmail    string
}
