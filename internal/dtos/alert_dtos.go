package dtos

// ScanResponse is the herd-scan payload: one line per alert actually
// applied, in scan order.
type ScanResponse struct {
	Success  bool     `json:"success"`
	Detalles []string `json:"detalles"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
