package dtos

// ValidationErrorDetail describes a single failed field so clients can
// highlight the offending input.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
