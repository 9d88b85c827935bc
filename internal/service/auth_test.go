package service_test

import (
	"testing"
	"time"

	"razorpay-checkout/internal/repository"
	"razorpay-checkout/internal/service"
	"razorpay-checkout/internal/testutil"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jwtSecret = "test-jwt-secret"

func newAuthService(t *testing.T) service.AuthService {
	t.Helper()
	return service.NewAuthService(repository.NewUserRepository(testutil.NewSQLiteDB(t)), jwtSecret, time.Hour)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := t.Context()

	user, err := svc.Register(ctx, "  Buyer@Example.COM ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "buyer@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	token, loggedIn, err := svc.Login(ctx, "buyer@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	principal, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, service.Principal{UserID: user.ID, Email: "buyer@example.com", Role: "user"}, *principal)
}

func TestRegister_Rejected(t *testing.T) {
	svc := newAuthService(t)
	ctx := t.Context()

	_, err := svc.Register(ctx, "taken@example.com", "long-enough")
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		password  string
		wantError error
	}{
		{name: "empty email", email: " ", password: "long-enough", wantError: service.ErrInvalidInput},
		{name: "not an email", email: "buyer", password: "long-enough", wantError: service.ErrInvalidInput},
		{name: "short password", email: gofakeit.Email(), password: "short", wantError: service.ErrInvalidInput},
		{name: "duplicate email", email: "TAKEN@example.com", password: "long-enough", wantError: service.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, tt.wantError)
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := t.Context()

	_, err := svc.Register(ctx, "buyer@example.com", "correct-horse")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "buyer@example.com", "wrong-horse")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)

	_, _, err = svc.Login(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, service.ErrUnauthenticated)
}

func TestParseToken_Rejected(t *testing.T) {
	svc := newAuthService(t)

	sign := func(method jwt.SigningMethod, claims jwt.MapClaims, secret string) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}
	valid := jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(time.Hour).Unix()}

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: sign(jwt.SigningMethodHS256, valid, "other")},
		{name: "wrong algorithm", token: sign(jwt.SigningMethodHS384, valid, jwtSecret)},
		{name: "expired", token: sign(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u1", "exp": time.Now().Add(-time.Minute).Unix()}, jwtSecret)},
		{name: "no expiry", token: sign(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "u1"}, jwtSecret)},
		{name: "no user id", token: sign(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}, jwtSecret)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(tt.token)
			assert.ErrorIs(t, err, service.ErrUnauthenticated)
		})
	}
}
