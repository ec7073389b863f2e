package dtos

// Farm create/update arrive as multipart forms (optional image file), so
// these fields are validated after manual extraction, not JSON-decoded.

type FarmRequest struct {
	Name        string `validate:"required,min=2,max=100"`
	Description string `validate:"max=500"`
}

type FarmResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

type PaddockRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type PaddockSummaryResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AnimalCount   int     `json:"animal_count"`
	AvgMilkLiters float64 `json:"avg_milk_liters"`
}
