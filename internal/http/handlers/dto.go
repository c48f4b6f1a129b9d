package handlers

type HealthResponse struct {
	Status string `json:"status"`
}
