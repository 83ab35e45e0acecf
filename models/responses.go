package models

// APIResponse is the uniform envelope for every HTTP response body.
//
// Success reports whether the operation succeeded, Message carries the
// stable human-readable outcome the frontend pattern-matches on, and Data
// holds the operation-specific payload (omitted when empty).
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// HealthResponse is the body of the root health-check endpoint.
type HealthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// RegisterRequest is the inbound payload for account registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// LoginRequest is the inbound payload for credential verification.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
