package usecase

import (
	"errors"

	ucauth "skill-match/internal/usecase/auth"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrJobNotFound         = errors.New("job not found")
	ErrSkillNotFound       = errors.New("skill not found")
	ErrSkillAlreadyExists  = errors.New("skill already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrEmailAlreadyRegistered = ucauth.ErrEmailAlreadyRegistered
	ErrInvalidCredentials     = ucauth.ErrInvalidCredentials
)
