package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

func newService(t *testing.T, opts ...Option) (*Service, *session.Memory) {
	t.Helper()
	store := session.NewMemory()
	svc, err := NewService("test-secret", time.Hour, store, append([]Option{WithHashCost(bcrypt.MinCost)}, opts...)...)
	require.NoError(t, err)
	return svc, store
}

func TestSignIn(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	res, err := svc.SignIn(ctx, " John@Example.com ", "password123", false)
	require.NoError(t, err)
	assert.Equal(t, "1", res.User.ID)
	assert.Equal(t, "patient", res.User.Role)
	assert.NotEmpty(t, res.Token)

	_, ok, _ := store.Get(ctx, session.UserKey("1"))
	assert.False(t, ok)

	claims, err := svc.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, "patient", claims.Role)
}

func TestSignInRemember(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "jane@example.com", "password123", true)
	require.NoError(t, err)

	u, ok, err := svc.Remembered(ctx, "2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Cardiology", u.Specialty)
	assert.Empty(t, u.PasswordHash)

	require.NoError(t, svc.SignOut(ctx, "2"))
	_, ok, err = svc.Remembered(ctx, "2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.SignIn(context.Background(), "admin@example.com", "password123", false)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.SignIn(context.Background(), "nobody@example.com", "x", false)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignUp(t *testing.T) {
	svc, _ := newService(t)

	u, err := svc.SignUp(SignUpInput{Name: "Ann", Email: "ann@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "4", u.ID)
	assert.Equal(t, "patient", u.Role)
	assert.Equal(t, DefaultProfilePicture, u.ProfilePicture)

	_, err = svc.SignIn(context.Background(), "ann@example.com", "secret1", false)
	require.NoError(t, err)

	_, err = svc.SignUp(SignUpInput{Name: "John", Email: "JOHN@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = svc.SignUp(SignUpInput{Name: "X", Email: "x@example.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.SignUp(SignUpInput{Name: "X", Email: "x@example.com", Password: "123456", Role: "nurse"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateProfileRewritesRememberedCopy(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.SignIn(ctx, "john@example.com", "password123", true)
	require.NoError(t, err)

	name := "Johnny Doe"
	u, err := svc.UpdateProfile(ctx, "1", ProfilePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", u.Name)

	remembered, ok, err := svc.Remembered(ctx, "1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Johnny Doe", remembered.Name)

	_, err = svc.UpdateProfile(ctx, "99", ProfilePatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfileWithoutSession(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	pic := "https://example.com/me.png"
	_, err := svc.UpdateProfile(ctx, "3", ProfilePatch{ProfilePicture: &pic})
	require.NoError(t, err)

	_, ok, _ := store.Get(ctx, session.UserKey("3"))
	assert.False(t, ok)

	u, _ := svc.User("3")
	assert.Equal(t, pic, u.ProfilePicture)
}

func TestParseTokenRejects(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newService(t, WithClock(func() time.Time { return issuedAt }))

	res, err := svc.SignIn(context.Background(), "john@example.com", "password123", false)
	require.NoError(t, err)

	other, _ := newService(t, WithClock(func() time.Time { return issuedAt }))
	_, err = other.ParseToken(res.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	later, _ := newService(t, WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) }))
	_, err = later.ParseToken(res.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
