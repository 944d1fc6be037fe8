package admin

import "time"

// LoginRequest for admin login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse for admin login
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Email       string    `json:"email"`
}

// MeResponse describes the authenticated admin
type MeResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
