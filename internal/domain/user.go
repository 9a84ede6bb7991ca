package domain

import (
	"context"
	"time"
)

const (
	RoleEmployee = "employee"
	RoleEmployer = "employer"
	RoleMediator = "mediator"
	RoleAdmin    = "admin"
)

// ValidRoles lists the roles a user can be assigned.
var ValidRoles = map[string]bool{
	RoleEmployee: true,
	RoleEmployer: true,
	RoleMediator: true,
	RoleAdmin:    true,
}

type User struct {
	ID        string    `json:"id"` // identity provider subject
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateRole(ctx context.Context, id string, role string) error
}

type AuthUsecase interface {
	EnsureUserExists(ctx context.Context, user *User) (*User, error)
	AssignRole(ctx context.Context, actor Actor, userID string, role string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}
