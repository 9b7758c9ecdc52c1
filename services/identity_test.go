// services/identity_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumen-social/lumen/models"
)

func TestRegisterStoresHashedPasswordAndDefaultBio(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user, err := env.identity.Register(ctx, models.RegisterRequest{
		Username:        "alice",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.DefaultBio, user.Bio)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
}

func TestRegisterKeepsProvidedBio(t *testing.T) {
	env := newTestEnv()

	user, err := env.identity.Register(context.Background(), models.RegisterRequest{
		Username:        "bob",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Bio:             "Photographer",
	})
	require.NoError(t, err)
	assert.Equal(t, "Photographer", user.Bio)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		message string
	}{
		{
			name:    "missing username",
			req:     models.RegisterRequest{Password: "secret123", ConfirmPassword: "secret123"},
			message: "Username and password are required",
		},
		{
			name:    "missing password",
			req:     models.RegisterRequest{Username: "carol"},
			message: "Username and password are required",
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Username: "carol", Password: "abc", ConfirmPassword: "abc"},
			message: "Password must be at least 6 characters",
		},
		{
			name:    "confirmation mismatch",
			req:     models.RegisterRequest{Username: "carol", Password: "secret123", ConfirmPassword: "secret124"},
			message: "Password confirmation does not match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := env.identity.Register(ctx, tt.req)
			assert.Nil(t, user)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.message, validation.Message)
		})
	}
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	env := newTestEnv()
	env.register(t, "alice")

	user, err := env.identity.Register(context.Background(), models.RegisterRequest{
		Username:        "alice",
		Password:        "different1",
		ConfirmPassword: "different1",
	})
	assert.Nil(t, user)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestAuthenticate(t *testing.T) {
	env := newTestEnv()
	registered := env.register(t, "alice")
	ctx := context.Background()

	user, err := env.identity.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = env.identity.Authenticate(ctx, "nobody", "secret123")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = env.identity.Authenticate(ctx, "alice", "wrongpass")
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestUpdateProfileBioFallsBackToDefault(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "alice")
	ctx := context.Background()

	updated, err := env.identity.UpdateProfile(ctx, user.ID, models.ProfileUpdateRequest{Bio: "New bio"})
	require.NoError(t, err)
	assert.Equal(t, "New bio", updated.Bio)

	updated, err = env.identity.UpdateProfile(ctx, user.ID, models.ProfileUpdateRequest{Bio: ""})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBio, updated.Bio)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "alice")
	ctx := context.Background()

	// Only one of the two password fields set: no change attempted.
	_, err := env.identity.UpdateProfile(ctx, user.ID, models.ProfileUpdateRequest{NewPassword: "changed123"})
	require.NoError(t, err)
	_, err = env.identity.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)

	// Wrong current password.
	_, err = env.identity.UpdateProfile(ctx, user.ID, models.ProfileUpdateRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "changed123",
		ConfirmPassword: "changed123",
	})
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)

	// Too short.
	_, err = env.identity.UpdateProfile(ctx, user.ID, models.ProfileUpdateRequest{
		CurrentPassword: "secret123",
		NewPassword:     "abc",
		ConfirmPassword: "abc",
	})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)

	// Valid change.
	_, err = env.identity.UpdateProfile(ctx, user.ID, models.ProfileUpdateRequest{
		CurrentPassword: "secret123",
		NewPassword:     "changed123",
		ConfirmPassword: "changed123",
	})
	require.NoError(t, err)
	_, err = env.identity.Authenticate(ctx, "alice", "changed123")
	require.NoError(t, err)
	_, err = env.identity.Authenticate(ctx, "alice", "secret123")
	require.ErrorAs(t, err, &authErr)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.identity.UpdateProfile(context.Background(), "missing", models.ProfileUpdateRequest{Bio: "hi"})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestSetAvatar(t *testing.T) {
	env := newTestEnv()
	user := env.register(t, "alice")
	ctx := context.Background()

	require.NoError(t, env.identity.SetAvatar(ctx, user.ID, "/avatars/avatar-"+user.ID+".png"))
	stored, err := env.store.Users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "/avatars/avatar-"+user.ID+".png", stored.Avatar)

	require.NoError(t, env.identity.SetAvatar(ctx, user.ID, ""))
	stored, err = env.store.Users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Avatar)
}
