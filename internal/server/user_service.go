// Package server provides the HTTP REST API for the placement backend.
package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/talentbruecke/placement-backend/internal/config"
	"github.com/talentbruecke/placement-backend/internal/db"
	"github.com/talentbruecke/placement-backend/internal/domain"
	"github.com/talentbruecke/placement-backend/internal/types"
)

// UserStore is the subset of the db layer the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, input *db.UserCreateInput) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*db.User, error)
	UpdateUserPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for account operations.
type UserService struct {
	db             UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             store,
		passwordConfig: passwordConfig,
	}
}

// convertDBUser converts db.User to types.User, excluding the password
// hash.
func convertDBUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:          dbUser.ID,
		Email:       dbUser.Email,
		Role:        dbUser.Role,
		CompanyName: dbUser.CompanyName,
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
	}
}

// Register creates a new account with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, &ErrValidation{Field: "role", Message: err.Error()}
	}

	existing, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := s.db.CreateUser(ctx, &db.UserCreateInput{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
		CompanyName:  req.CompanyName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return convertDBUser(dbUser), nil
}

// Login authenticates a user and returns account data.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: always return the same error whether the account is
	// missing or the password is wrong.
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUser(dbUser), nil
}

// UpdatePassword rotates a user's password after verifying the current
// one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdateUserPassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
