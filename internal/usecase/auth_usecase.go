package usecase

import (
	"context"
	"errors"

	"skill-match/internal/domain/user"
	"skill-match/internal/pkg/jwt"
	ucauth "skill-match/internal/usecase/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthResult struct {
	User         user.User
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (AuthResult, error)
	Login(ctx context.Context, in ucauth.LoginInput) (AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (AuthResult, error)
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	log     *zap.Logger
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, log *zap.Logger) *Auth {
	if log == nil {
		log = zap.NewNop()
	}
	return &Auth{authSvc: ucauth.NewService(users), users: users, jwt: jwtSvc, log: log}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (AuthResult, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return AuthResult{}, mapAuthError(err)
	}
	u.log.Info("user registered", zap.Stringer("user_id", usr.ID), zap.String("role", string(usr.Role)))
	return u.issue(usr)
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (AuthResult, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return AuthResult{}, mapAuthError(err)
	}
	return u.issue(usr)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	if refreshToken == "" {
		return AuthResult{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return AuthResult{}, ErrRefreshTokenExpired
		}
		return AuthResult{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return AuthResult{}, ErrInvalidRefreshToken
		}
		u.log.Error("refresh: load user", zap.Error(err))
		return AuthResult{}, ErrInternal
	}
	usr.PasswordHash = ""
	return u.issue(usr)
}

func (u *Auth) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUnauthorized
		}
		u.log.Error("me: load user", zap.Error(err))
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Auth) issue(usr user.User) (AuthResult, error) {
	access, err := u.jwt.GenerateAccessToken(jwt.Identity{
		UserID: usr.ID,
		Email:  usr.Email,
		Name:   usr.Name,
		Role:   string(usr.Role),
	})
	if err != nil {
		u.log.Error("sign access token", zap.Error(err))
		return AuthResult{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		u.log.Error("sign refresh token", zap.Error(err))
		return AuthResult{}, ErrInternal
	}
	return AuthResult{User: usr, AccessToken: access, RefreshToken: refresh}, nil
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, ucauth.ErrInvalidInput):
		return ErrInvalidInput
	case errors.Is(err, ucauth.ErrInternal):
		return ErrInternal
	default:
		return err
	}
}
