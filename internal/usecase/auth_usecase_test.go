package usecase

import (
	"context"
	"testing"
	"time"

	"skill-match/internal/domain/user"
	"skill-match/internal/pkg/jwt"
	ucauth "skill-match/internal/usecase/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func newJWT() *jwt.HMACService {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func TestAuth_RegisterIssuesTokens(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	tokens := newJWT()
	uc := NewAuthUsecase(users, tokens, nil)

	users.On("ExistsByEmail", ctx, "seeker@example.com").Return(false, nil)
	users.On("CreateUser", ctx, mock.MatchedBy(func(u user.User) bool {
		return u.Email == "seeker@example.com" && u.Role == user.RoleJobSeeker && u.PasswordHash != ""
	})).Return(nil)

	res, err := uc.Register(ctx, ucauth.RegisterInput{Email: "Seeker@example.com", Password: "long-password", Name: "Sam"})
	require.NoError(t, err)
	assert.Empty(t, res.User.PasswordHash)

	claims, err := tokens.ValidateAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)
	assert.Equal(t, string(user.RoleJobSeeker), claims.Role)

	_, err = tokens.ValidateAccessToken(res.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalid)
}

func TestAuth_Refresh(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	tokens := newJWT()
	uc := NewAuthUsecase(users, tokens, nil)

	id := uuid.New()
	users.On("GetUserByID", ctx, id).Return(user.User{ID: id, Email: "e@example.com", Role: user.RoleEmployer, PasswordHash: "hash"}, nil)

	refresh, err := tokens.GenerateRefreshToken(id)
	require.NoError(t, err)

	res, err := uc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.Empty(t, res.User.PasswordHash)
	claims, err := tokens.ValidateAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(user.RoleEmployer), claims.Role)

	_, err = uc.Refresh(ctx, res.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	_, err = uc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuth_RefreshForDeletedUser(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	tokens := newJWT()
	uc := NewAuthUsecase(users, tokens, nil)

	id := uuid.New()
	users.On("GetUserByID", ctx, id).Return(user.User{}, user.ErrNotFound)
	refresh, err := tokens.GenerateRefreshToken(id)
	require.NoError(t, err)

	_, err = uc.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestAuth_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserRepository)
	uc := NewAuthUsecase(users, newJWT(), nil)
	users.On("GetUserByEmail", ctx, "nobody@example.com").Return(user.User{}, user.ErrNotFound)

	_, err := uc.Login(ctx, ucauth.LoginInput{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
