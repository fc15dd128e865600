package models

import "time"

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required" example:"admin123"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AdminMeResponse struct {
	IsAdmin   bool      `json:"is_admin"`
	Subject   string    `json:"subject"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
