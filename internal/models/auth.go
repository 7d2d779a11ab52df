package models

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful register/login
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
