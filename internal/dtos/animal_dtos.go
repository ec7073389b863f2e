package dtos

type AnimalRequest struct {
	Code          string  `json:"code" validate:"required,min=1,max=50"`
	AgeYears      int     `json:"age_years" validate:"gte=0,lte=40"`
	Breed         string  `json:"breed" validate:"max=100"`
	HealthNotes   string  `json:"health_notes" validate:"max=1000"`
	Vaccines      string  `json:"vaccines" validate:"max=1000"`
	PregnancyDate *string `json:"pregnancy_date" validate:"omitempty,datetime=2006-01-02"`
	DewormingDate *string `json:"deworming_date" validate:"omitempty,datetime=2006-01-02"`
}

type AnimalDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type AssignVeterinarianRequest struct {
	VeterinarianID string `json:"veterinarian_id" validate:"required,uuid4"`
}

type AnimalResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	AgeYears       int     `json:"age_years"`
	Breed          string  `json:"breed"`
	HealthNotes    string  `json:"health_notes"`
	Vaccines       string  `json:"vaccines"`
	PregnancyDate  *string `json:"pregnancy_date"`
	DewormingDate  *string `json:"deworming_date"`
	PaddockID      string  `json:"paddock_id"`
	VeterinarianID *string `json:"veterinarian_id"`
	AvgMilkLiters  float64 `json:"avg_milk_liters"`
}
