package models

// Credentials is the request body for member login and the validated part of
// a registration payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginRequest is the request body for admin login.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// StatusUpdateRequest is the request body for transaction status updates.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
