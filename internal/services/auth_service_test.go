package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velmariner/rentora/internal/db"
	"github.com/velmariner/rentora/internal/models"
)

func newAuthService(t *testing.T) (*AuthService, *db.Repositories) {
	t.Helper()
	repositories := db.NewRepositories(openTestDatabase(t))
	return NewAuthService(repositories.Users), repositories
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	service, _ := newAuthService(t)

	user, err := service.Register(RegisterInput{
		Username:        "  alice  ",
		Email:           " Alice@Example.COM ",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
		Role:            "owner",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.True(t, CheckPassword(user.PasswordHash, "sup3rsecret"))
}

func TestRegisterValidationMessages(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Register(RegisterInput{Username: "x", Email: "", Password: "p", ConfirmPassword: "p"})
	assert.EqualError(t, err, "Username, email and password are required.")

	_, err = service.Register(RegisterInput{Username: "x", Email: "x@example.com", Password: "one", ConfirmPassword: "two"})
	assert.EqualError(t, err, "Passwords do not match.")
}

func TestAuthenticateSharedFailureMessage(t *testing.T) {
	service, _ := newAuthService(t)
	_, err := service.Register(RegisterInput{
		Username: "alice", Email: "alice@example.com",
		Password: "sup3rsecret", ConfirmPassword: "sup3rsecret",
	})
	require.NoError(t, err)

	_, unknownErr := service.Authenticate("nobody@example.com", "whatever")
	_, wrongErr := service.Authenticate("alice@example.com", "wrong")

	assert.EqualError(t, unknownErr, "Invalid email or password.")
	assert.EqualError(t, wrongErr, unknownErr.Error(), "unknown email and wrong password are indistinguishable")
}

func TestAuthenticateCaseInsensitiveEmail(t *testing.T) {
	service, _ := newAuthService(t)
	_, err := service.Register(RegisterInput{
		Username: "alice", Email: "alice@example.com",
		Password: "sup3rsecret", ConfirmPassword: "sup3rsecret",
	})
	require.NoError(t, err)

	user, err := service.Authenticate("  ALICE@Example.com ", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestEnsureAdminSeedAndReset(t *testing.T) {
	service, _ := newAuthService(t)

	admin, created, err := service.EnsureAdmin("admin", "admin@rental.com", "admin123", false)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// A second boot leaves the existing account alone.
	_, created, err = service.EnsureAdmin("admin", "admin@rental.com", "different-password", false)
	require.NoError(t, err)
	assert.False(t, created)
	authenticated, err := service.Authenticate("admin@rental.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, authenticated.ID)

	// resetExisting restores the configured password.
	_, created, err = service.EnsureAdmin("admin", "admin@rental.com", "rotated-password", true)
	require.NoError(t, err)
	assert.False(t, created)
	_, err = service.Authenticate("admin@rental.com", "rotated-password")
	assert.NoError(t, err)
}

func TestUpdateProfileRequiresCurrentPassword(t *testing.T) {
	service, _ := newAuthService(t)
	user, err := service.Register(RegisterInput{
		Username: "alice", Email: "alice@example.com",
		Password: "sup3rsecret", ConfirmPassword: "sup3rsecret",
	})
	require.NoError(t, err)

	_, err = service.UpdateProfile(user.ID, ProfileInput{
		Username: "alice", Email: "alice@example.com",
		CurrentPassword: "wrong", NewPassword: "newpassword",
	})
	assert.EqualError(t, err, "Current password is incorrect.")

	updated, err := service.UpdateProfile(user.ID, ProfileInput{
		Username: "alice", Email: "alice@example.com",
		CurrentPassword: "sup3rsecret", NewPassword: "newpassword",
	})
	require.NoError(t, err)
	assert.True(t, CheckPassword(updated.PasswordHash, "newpassword"))
}
