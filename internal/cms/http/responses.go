package http

import (
	"net/http"

	"github.com/odonlab/cms/pkg/httpx"
)

// ErrorResponse is the error body shape for every non-2xx JSON response.
type ErrorResponse struct {
	Error            string `json:"error" example:"not_found"`
	ErrorDescription string `json:"error_description" example:"Page not found"`
}

// MessageResponse is the confirmation body for deletes and similar
// operations that have nothing else to return.
type MessageResponse struct {
	Message string `json:"message" example:"Page deleted successfully"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// RegisterRequest is the registration request body.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"hunter22"`
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"hunter22"`
}

// HealthResponse is the body for the health probe endpoints.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
}

func writeError(w http.ResponseWriter, status int, code, desc string) {
	httpx.WriteJSON(w, status, ErrorResponse{
		Error:            code,
		ErrorDescription: desc,
	})
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	writeError(w, http.StatusBadRequest, "invalid_request", desc)
}

func writeNotFound(w http.ResponseWriter, desc string) {
	writeError(w, http.StatusNotFound, "not_found", desc)
}

func writeServerError(w http.ResponseWriter, desc string) {
	writeError(w, http.StatusInternalServerError, "server_error", desc)
}
