package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentbruecke/placement-backend/internal/config"
	"github.com/talentbruecke/placement-backend/internal/db"
	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// memUserStore is an in-memory UserStore for service tests.
type memUserStore struct {
	byEmail map[string]*db.User
	byID    map[uuid.UUID]*db.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{
		byEmail: make(map[string]*db.User),
		byID:    make(map[uuid.UUID]*db.User),
	}
}

func (m *memUserStore) CreateUser(_ context.Context, input *db.UserCreateInput) (*db.User, error) {
	u := &db.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CompanyName:  input.CompanyName,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *memUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.User, error) {
	return m.byID[id], nil
}

func (m *memUserStore) UpdateUserPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	if u, ok := m.byID[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func newTestUserService(t *testing.T) (*UserService, *memUserStore) {
	t.Helper()
	store := newMemUserStore()
	// Minimum cost keeps the bcrypt tests fast
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.RegisterRequest{
		Email:    "amina@example.com",
		Password: "correct horse battery",
		Role:     "applicant",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleApplicant, user.Role)

	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "amina@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	req := &types.RegisterRequest{
		Email:    "dup@example.com",
		Password: "password123",
		Role:     "applicant",
	}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	service, _ := newTestUserService(t)

	_, err := service.Register(context.Background(), &types.RegisterRequest{
		Email:    "x@example.com",
		Password: "password123",
		Role:     "superuser",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrValidation{}, err)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, &types.RegisterRequest{
		Email:    "amina@example.com",
		Password: "correct horse battery",
		Role:     "applicant",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &types.LoginRequest{
		Email:    "amina@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	service, _ := newTestUserService(t)

	_, err := service.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	// Same error as a wrong password, so callers cannot probe accounts
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, store := newTestUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.RegisterRequest{
		Email:       "rotate@example.com",
		Password:    "old password",
		Role:        "company",
		CompanyName: "Hofgut Sonnenschein GmbH",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, user.ID, "old password", "new password")
	require.NoError(t, err)

	stored := store.byID[user.ID]
	loggedIn, err := service.Login(ctx, &types.LoginRequest{
		Email:    "rotate@example.com",
		Password: "new password",
	})
	require.NoError(t, err)
	assert.Equal(t, stored.ID, loggedIn.ID)
}

func TestUserService_UpdatePassword_WrongCurrent(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.RegisterRequest{
		Email:    "rotate@example.com",
		Password: "old password",
		Role:     "applicant",
	})
	require.NoError(t, err)

	err = service.UpdatePassword(ctx, user.ID, "not the password", "new password")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordMismatch{}, err)
}

func TestUserService_UpdatePassword_UnknownUser(t *testing.T) {
	service, _ := newTestUserService(t)

	err := service.UpdatePassword(context.Background(), uuid.New(), "a", "b")
	require.Error(t, err)
	assert.IsType(t, &ErrUserNotFound{}, err)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 409, HTTPStatus(&ErrEmailAlreadyExists{}))
	assert.Equal(t, 401, HTTPStatus(&ErrInvalidCredentials{}))
	assert.Equal(t, 401, HTTPStatus(&ErrPasswordMismatch{}))
	assert.Equal(t, 404, HTTPStatus(&ErrUserNotFound{}))
	assert.Equal(t, 400, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
}
