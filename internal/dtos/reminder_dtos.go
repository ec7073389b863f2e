package dtos

type ReminderRequest struct {
	// Local wall-clock time, "2006-01-02T15:04".
	DueAt    string  `json:"due_at" validate:"required,datetime=2006-01-02T15:04"`
	Title    string  `json:"title" validate:"required,min=1,max=200"`
	Body     string  `json:"body" validate:"max=1000"`
	Category string  `json:"category" validate:"max=100"`
	AnimalID *string `json:"animal_id" validate:"omitempty,uuid4"`
}

type ReminderResponse struct {
	ID       string  `json:"id"`
	DueAt    string  `json:"due_at"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	Category string  `json:"category"`
	AnimalID *string `json:"animal_id"`
	Sent     bool    `json:"sent"`
}
