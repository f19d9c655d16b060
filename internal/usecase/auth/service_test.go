package auth

import (
	"context"
	"errors"
	"testing"

	"skill-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byEmail map[string]user.User
	err     error
}

func newMemUsers() *memUsers { return &memUsers{byEmail: map[string]user.User{}} }

func (m *memUsers) CreateUser(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return user.ErrEmailExists
	}
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func newTestService(users user.Repository) *Service {
	s := NewService(users)
	s.cost = bcrypt.MinCost
	return s
}

func TestRegisterAndLogin(t *testing.T) {
	users := newMemUsers()
	s := newTestService(users)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Email: "  Dev@Example.com ", Password: "secret-pass", Name: " Dev ", Role: user.RoleEmployer})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", u.Email)
	assert.Equal(t, "Dev", u.Name)
	assert.Equal(t, user.RoleEmployer, u.Role)
	assert.Empty(t, u.PasswordHash)
	assert.NotEmpty(t, users.byEmail["dev@example.com"].PasswordHash)

	logged, err := s.Login(ctx, LoginInput{Email: "DEV@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.Empty(t, logged.PasswordHash)
}

func TestRegister_DefaultsToJobSeeker(t *testing.T) {
	u, err := newTestService(newMemUsers()).Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "12345678", Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, user.RoleJobSeeker, u.Role)
}

func TestRegister_Rejects(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	s := newTestService(users)

	cases := []RegisterInput{
		{Email: "", Password: "12345678", Name: "A"},
		{Email: "a@b.c", Password: "short", Name: "A"},
		{Email: "a@b.c", Password: "12345678", Name: "  "},
		{Email: "a@b.c", Password: "12345678", Name: "A", Role: "admin"},
	}
	for _, in := range cases {
		_, err := s.Register(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", in)
	}

	_, err := s.Register(ctx, RegisterInput{Email: "a@b.c", Password: "12345678", Name: "A"})
	require.NoError(t, err)
	_, err = s.Register(ctx, RegisterInput{Email: "A@B.C", Password: "12345678", Name: "B"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	users.err = errors.New("db down")
	_, err = s.Register(ctx, RegisterInput{Email: "x@y.z", Password: "12345678", Name: "X"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogin_Rejects(t *testing.T) {
	ctx := context.Background()
	s := newTestService(newMemUsers())
	_, err := s.Register(ctx, RegisterInput{Email: "a@b.c", Password: "12345678", Name: "A"})
	require.NoError(t, err)

	_, err = s.Login(ctx, LoginInput{Email: "a@b.c", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, LoginInput{Email: "nobody@b.c", Password: "12345678"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = s.Login(ctx, LoginInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
