package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/talentbruecke/placement-backend/internal/domain"
)

// User represents an account row. PasswordHash never leaves the db layer
// in API responses.
type User struct {
	ID           uuid.UUID   `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         domain.Role `json:"role"`
	CompanyName  string      `json:"company_name,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// UserCreateInput holds the fields needed to create a user.
type UserCreateInput struct {
	Email        string
	PasswordHash string
	Role         domain.Role
	CompanyName  string
}

// ListUsersOptions contains filters for the admin user listing.
type ListUsersOptions struct {
	Role   domain.Role
	Limit  int
	Offset int
}
