package dtos

type MilkProductionRequest struct {
	Date   string  `json:"date" validate:"required,datetime=2006-01-02"`
	Liters float64 `json:"liters" validate:"required,gt=0"`
}

type MilkProductionResponse struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Liters float64 `json:"liters"`
}

type MedicalProcedureRequest struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Kind        string `json:"kind" validate:"required,max=100"`
	Description string `json:"description" validate:"max=1000"`
	Status      string `json:"status" validate:"max=50"`
}

type MedicalProcedureResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
