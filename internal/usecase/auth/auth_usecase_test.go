package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/storage"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
	"github.com/soulmatch/soulmatch-backend/internal/repository/kv"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupAuthTest() (*auth.AuthUseCase, repository.ProfileRepository) {
	profileRepo := kv.NewProfileRepository(storage.NewMemoryStore())
	uc := auth.NewAuthUseCase(profileRepo, testSecret, time.Hour, logger.NewNop())
	return uc, profileRepo
}

func validSignup() *auth.SignupRequest {
	return &auth.SignupRequest{
		Email:           "ana@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Name:            "Ana",
		Age:             "27",
		Gender:          domain.GenderWoman,
		InterestedIn:    domain.InterestedInEveryone,
	}
}

func TestSignup(t *testing.T) {
	uc, profileRepo := setupAuthTest()

	result, err := uc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ana@example.com", result.Profile.Email)
	assert.Equal(t, 27, result.Profile.Age)
	// Personality type is only assigned by the assessment
	assert.False(t, result.Profile.IsOnboarded())

	saved, err := profileRepo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result.Profile, saved)
}

func TestSignupValidation(t *testing.T) {
	uc, _ := setupAuthTest()
	ctx := context.Background()

	mismatched := validSignup()
	mismatched.ConfirmPassword = "different"
	_, err := uc.Signup(ctx, mismatched)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Passwords do not match", err.Error())

	empty := validSignup()
	empty.Name = "   "
	_, err = uc.Signup(ctx, empty)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	badAge := validSignup()
	badAge.Age = "twenty-seven"
	_, err = uc.Signup(ctx, badAge)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestLoginAcceptsAnyNonEmptyCredentials(t *testing.T) {
	uc, profileRepo := setupAuthTest()
	ctx := context.Background()

	result, err := uc.Login(ctx, "whoever@example.com", "anything")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	saved, err := profileRepo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "whoever@example.com", saved.Email)
	assert.Equal(t, "Demo User", saved.Name)
	assert.Equal(t, domain.PersonalityTypeDefault, saved.PersonalityType)
	assert.True(t, saved.IsOnboarded())
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	uc, _ := setupAuthTest()
	ctx := context.Background()

	_, err := uc.Login(ctx, "", "password")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = uc.Login(ctx, "a@b.c", "   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestLogoutClearsProfile(t *testing.T) {
	uc, profileRepo := setupAuthTest()
	ctx := context.Background()

	_, err := uc.Signup(ctx, validSignup())
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))

	_, err = profileRepo.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestParseToken(t *testing.T) {
	uc, _ := setupAuthTest()

	result, err := uc.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)

	email, err := uc.ParseToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)

	_, err = uc.ParseToken("not-a-token")
	assert.Error(t, err)
}
