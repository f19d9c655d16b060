package dto

import (
	"skill-match/internal/domain/user"
	"skill-match/internal/usecase"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=120"`
	Role     string `json:"role" validate:"omitempty,oneof=jobSeeker employer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	User         user.User `json:"user"`
}

func NewAuthResponse(res usecase.AuthResult) AuthResponse {
	return AuthResponse{
		Token:        res.AccessToken,
		RefreshToken: res.RefreshToken,
		Name:         res.User.Name,
		Role:         string(res.User.Role),
		User:         res.User,
	}
}
