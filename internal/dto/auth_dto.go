package dto

import (
	"time"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
)

// LoginRequest carries the credentials for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// RefreshTokenRequest carries a refresh token exchange.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// MeResponse describes the authenticated caller.
type MeResponse struct {
	UserID   string      `json:"userID"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Role     domain.Role `json:"role"`
	AgencyID string      `json:"agencyID"`
}

// ToMeResponse converts a domain user into the /auth/me payload.
func ToMeResponse(user *domain.User) MeResponse {
	return MeResponse{
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		AgencyID: user.AgencyID,
	}
}
