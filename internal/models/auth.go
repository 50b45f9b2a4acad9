package models

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token,omitempty"`
	User    *AuthUser `json:"user,omitempty"`
	Message string    `json:"message,omitempty"`
}

type AuthUser struct {
	Username string `json:"username"`
}
