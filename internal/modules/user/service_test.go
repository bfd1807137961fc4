package user

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*User
}

func newMemRepo() *memRepo { return &memRepo{users: make(map[uuid.UUID]*User)} }

func (r *memRepo) CreateUser(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *u
	r.users[u.ID] = &c
	return nil
}

func (r *memRepo) GetUserByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, ok := r.users[uid]
	if !ok {
		return nil, ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *memRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrUserNotFound
}

func TestRegisterUser(t *testing.T) {
	svc := NewService(newMemRepo())

	u, err := svc.RegisterUser(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "user", u.Role)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestGetUser_NotFound(t *testing.T) {
	svc := NewService(newMemRepo())

	_, err := svc.GetUser(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
