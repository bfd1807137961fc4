package user

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when no user exists for the given id or email.
var ErrUserNotFound = errors.New("user not found")

// Repository defines data access for users.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
