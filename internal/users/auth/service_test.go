// Copyright (c) 2026 TaskTrail. All rights reserved.

package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasktrail/api/internal/platform/apperr"
	"github.com/tasktrail/api/internal/platform/sec"
)

// fakeUserRepository is an in-memory UserRepository keyed by email.
type fakeUserRepository struct {
	byEmail map[string]*User
	nextID  int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byEmail: make(map[string]*User), nextID: 1}
}

func (r *fakeUserRepository) Create(_ context.Context, user *User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return apperr.Conflict("Username or email already exists")
	}
	user.ID = r.nextID
	r.nextID++
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

// staticTokenProvider returns a fixed token string.
type staticTokenProvider struct{ token string }

func (p staticTokenProvider) Generate(int64, string, string) (string, error) {
	return p.token, nil
}

func newTestAuthService() (*Service, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewService(repo, staticTokenProvider{token: "signed-token"}), repo
}

func TestService_Register_HashesPassword(t *testing.T) {
	service, repo := newTestAuthService()

	user, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	stored := repo.byEmail["alice@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "Sup3rSecret", stored.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("Sup3rSecret", stored.PasswordHash))
}

func TestService_Register_Duplicate(t *testing.T) {
	service, _ := newTestAuthService()

	input := RegisterInput{Username: "alice", Email: "alice@example.com", Password: "Sup3rSecret"}
	_, err := service.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = service.Register(context.Background(), input)
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, 409, appError.HTTPStatus)
}

func TestService_Login_Success(t *testing.T) {
	service, _ := newTestAuthService()

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	session, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, "alice", session.User.Username)
}

// failingUserRepository simulates an unreachable database.
type failingUserRepository struct{}

func (failingUserRepository) Create(context.Context, *User) error {
	return errors.New("postgres_user_repo_create_failed: connection refused")
}

func (failingUserRepository) FindByEmail(context.Context, string) (*User, error) {
	return nil, errors.New("postgres_user_repo_find_by_email_failed: connection refused")
}

func TestService_Login_RepositoryFailure(t *testing.T) {
	service := NewService(failingUserRepository{}, staticTokenProvider{token: "signed-token"})

	_, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})
	require.Error(t, err)

	// An infrastructure failure is a server error, never a credentials 401.
	appError := apperr.As(err)
	if appError != nil {
		assert.GreaterOrEqual(t, appError.HTTPStatus, 500)
	}
	assert.NotContains(t, err.Error(), "Invalid email or password")
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _ := newTestAuthService()

	_, err := service.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPassword := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "WrongPassw0rd",
	})
	_, unknownEmail := service.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "Sup3rSecret",
	})

	for _, err := range []error{wrongPassword, unknownEmail} {
		require.Error(t, err)
		appError := apperr.As(err)
		require.NotNil(t, appError)
		assert.Equal(t, 401, appError.HTTPStatus)
		assert.Equal(t, "Invalid email or password", appError.Message)
	}
}
