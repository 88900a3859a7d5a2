package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narbehner/Movie-Watchlist/models"
)

const testSecret = "test-secret"

func newTestAuthService(users *fakeUserStore) *AuthService {
	return NewAuthService(users, testSecret, nil)
}

func TestRegisterCreatesUserWithEmptyWatchlist(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)

	user, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.Movies)
	assert.NotNil(t, user.Movies)
	assert.NotEqual(t, "hunter22", user.Password, "password must not be stored in plaintext")

	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRegisterDuplicateEmailLeavesFirstUserUntouched(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)
	ctx := context.Background()

	first, err := svc.Register(ctx, &models.RegisterRequest{Email: "bob@example.com", Password: "first-pass"})
	require.NoError(t, err)
	originalHash := first.Password

	_, err = svc.Register(ctx, &models.RegisterRequest{Email: "bob@example.com", Password: "other-pass"})
	assert.ErrorIs(t, err, ErrDuplicateUser)

	stored, err := users.FindByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, originalHash, stored.Password)
	assert.Len(t, users.users, 1)
}

func TestLoginSuccessIssuesTokenBoundToUser(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &models.RegisterRequest{Email: "carol@example.com", Password: "secret99"})
	require.NoError(t, err)

	tokenString, user, err := svc.Login(ctx, &models.LoginRequest{Email: "carol@example.com", Password: "secret99"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.False(t, user.LastLogin.IsZero())

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, registered.ID, claims["user_id"])
	assert.Equal(t, "carol@example.com", claims["email"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	users := newFakeUserStore()
	svc := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, &models.RegisterRequest{Email: "dave@example.com", Password: "correct-pass"})
	require.NoError(t, err)

	_, _, wrongPassErr := svc.Login(ctx, &models.LoginRequest{Email: "dave@example.com", Password: "wrong-pass"})
	_, _, unknownEmailErr := svc.Login(ctx, &models.LoginRequest{Email: "nobody@example.com", Password: "correct-pass"})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}

func TestNewEntityIDIsOpaqueHex(t *testing.T) {
	id := NewEntityID()
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, NewEntityID())
}
