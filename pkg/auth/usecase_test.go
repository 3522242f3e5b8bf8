package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserRepo struct {
	byEmail    map[string]User
	byUsername map[string]User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: map[string]User{}, byUsername: map[string]User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, user User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return ErrUserAlreadyExists
	}
	if _, ok := r.byUsername[user.Username]; ok {
		return ErrUserAlreadyExists
	}
	r.byEmail[user.Email] = user
	r.byUsername[user.Username] = user
	return nil
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) GetByUsername(_ context.Context, username string) (User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo())

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), "", "a@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a", "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "a", "a@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "other", "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(context.Background(), "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegister_DuplicateIsCaseInsensitive(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo())

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "ALICE", "x@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(context.Background(), "bob", "Alice@Example.COM", "pw")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newMemoryUserRepo())

	registered, err := svc.Register(context.Background(), "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "ghost@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
