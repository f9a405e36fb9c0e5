package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anma.link/models"
	"anma.link/repositories"
)

// fakeUserRepo bellek içi IUserRepository uygulamasıdır.
type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

var _ repositories.IUserRepository = (*fakeUserRepo)(nil)

func newTestAuthService() IAuthService {
	return NewAuthService(newFakeUserRepo(), NewTokenService("test-secret"))
}

func TestAuthServiceRegisterAndLogin(t *testing.T) {
	auth := newTestAuthService()
	ctx := context.Background()

	registered, err := auth.Register(ctx, "demo@vhm.org", "DemoPass123")
	require.NoError(t, err)
	require.NotNil(t, registered.User)
	assert.Equal(t, "demo@vhm.org", registered.User.Email)
	assert.NotEmpty(t, registered.Token)
	// Hash istemciye ham şifre olarak dönmemeli.
	assert.NotEqual(t, "DemoPass123", registered.User.PasswordHash)

	loggedIn, err := auth.Login(ctx, "demo@vhm.org", "DemoPass123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestAuthServiceRegisterNormalizesEmail(t *testing.T) {
	auth := newTestAuthService()
	ctx := context.Background()

	registered, err := auth.Register(ctx, "  Demo@VHM.org  ", "DemoPass123")
	require.NoError(t, err)
	assert.Equal(t, "demo@vhm.org", registered.User.Email)

	// Farklı büyük/küçük harfle giriş de çalışmalı.
	_, err = auth.Login(ctx, "DEMO@vhm.ORG", "DemoPass123")
	assert.NoError(t, err)
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	auth := newTestAuthService()
	ctx := context.Background()

	_, err := auth.Register(ctx, "demo@vhm.org", "DemoPass123")
	require.NoError(t, err)

	_, err = auth.Register(ctx, "demo@vhm.org", "OtherPass456")
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestAuthServiceRegisterShortPassword(t *testing.T) {
	auth := newTestAuthService()

	_, err := auth.Register(context.Background(), "demo@vhm.org", "short")
	assert.ErrorIs(t, err, ErrAuthInvalidInput)
}

func TestAuthServiceLoginRejectsBadCredentials(t *testing.T) {
	auth := newTestAuthService()
	ctx := context.Background()

	_, err := auth.Register(ctx, "demo@vhm.org", "DemoPass123")
	require.NoError(t, err)

	_, wrongPassErr := auth.Login(ctx, "demo@vhm.org", "WrongPass999")
	_, unknownErr := auth.Login(ctx, "nobody@vhm.org", "DemoPass123")

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	// Bilinmeyen e-posta ile yanlış şifre ayırt edilememeli.
	assert.Equal(t, wrongPassErr, unknownErr)
}
