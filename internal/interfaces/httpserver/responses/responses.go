// Package responses contains HTTP response DTOs shared across endpoints.
// Token-specific response types are in the token subpackage.
package responses

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error     string `json:"error" example:"identity and room are required"`
	Type      string `json:"type,omitempty" example:"validation_error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Service   string `json:"service" example:"livekit-token-service"`
	Timestamp int64  `json:"timestamp"`
}
