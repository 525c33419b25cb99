package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
)

type fakeRepo struct {
	users  map[string]*User
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (f *fakeRepo) SetEmailVerified(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.EmailVerified = true
	return nil
}

func (f *fakeRepo) SetPhoneVerified(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.PhoneVerified = true
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	// Minimal cost keeps the test suite fast.
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func TestRegister(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:       "  Bride@Example.COM ",
		Password:    "password123",
		DisplayName: "Jordan",
	})
	require.NoError(t, err)

	assert.Equal(t, "bride@example.com", u.Email)
	assert.Equal(t, auth.RoleClient, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "password123", u.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService()

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{Email: "a@b.c", Password: "short"})
		assert.Error(t, err)
	})

	t.Run("admin self-registration rejected", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{
			Email: "a@b.c", Password: "password123", Role: auth.RoleAdmin,
		})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("vendor role allowed", func(t *testing.T) {
		u, err := svc.Register(context.Background(), RegisterRequest{
			Email: "vendor@b.c", Password: "password123", Role: auth.RoleVendor,
		})
		require.NoError(t, err)
		assert.Equal(t, auth.RoleVendor, u.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(context.Background(), RegisterRequest{Email: "dup@b.c", Password: "password123"})
		require.NoError(t, err)
		_, err = svc.Register(context.Background(), RegisterRequest{Email: "DUP@b.c", Password: "password123"})
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestLogin(t *testing.T) {
	svc, repo := newTestService()

	registered, err := svc.Register(context.Background(), RegisterRequest{
		Email: "login@example.com", Password: "password123",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "login@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "login@example.com", "nope-nope-nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		repo.users[registered.ID].IsActive = false
		_, err := svc.Login(context.Background(), "login@example.com", "password123")
		assert.ErrorIs(t, err, ErrInactiveUser)
	})
}

func TestMarkVerified(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email: "verify@example.com", Password: "password123", Phone: "+886912345678",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkVerified(context.Background(), u.ID, "email"))
	assert.True(t, repo.users[u.ID].EmailVerified)
	assert.False(t, repo.users[u.ID].PhoneVerified)

	require.NoError(t, svc.MarkVerified(context.Background(), u.ID, "sms"))
	assert.True(t, repo.users[u.ID].PhoneVerified)

	assert.Error(t, svc.MarkVerified(context.Background(), u.ID, "fax"))
}
