package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

// AuthUseCase handles signup, login and logout.
//
// There is no real authentication boundary here: login accepts any
// non-empty email/password pair and yields a demo profile, and the
// password hash stored at signup is never checked. This is a known
// demo simplification carried over deliberately, not a security
// control. The session token only identifies the active profile to
// the HTTP layer.
type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	jwtSecret   string
	tokenTTL    time.Duration
	log         *logger.Logger
}

func NewAuthUseCase(
	profileRepo repository.ProfileRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		log:         log,
	}
}

// SignupRequest carries the signup form fields. Age arrives as text
// the way the form produces it and is parsed here.
type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Age             string `json:"age" binding:"required"`
	Gender          string `json:"gender" binding:"required,oneof=woman man non-binary prefer-not-to-say"`
	InterestedIn    string `json:"interested_in" binding:"required,oneof=women men non-binary everyone"`
}

// AuthResult is the outcome of a successful signup or login.
type AuthResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   *domain.Profile `json:"profile"`
}

// Signup validates the form, persists a fresh profile (without a
// personality type; the assessment adds that later) and issues a
// session token. The password itself is not retained in the profile
// record; only a bcrypt hash is stored, under a separate key.
func (uc *AuthUseCase) Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error) {
	if req.Password != req.ConfirmPassword {
		return nil, domain.NewValidationError("Passwords do not match")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" ||
		strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Age) == "" ||
		strings.TrimSpace(req.Gender) == "" || strings.TrimSpace(req.InterestedIn) == "" {
		return nil, domain.NewValidationError("Please fill in all fields")
	}
	age, err := strconv.Atoi(strings.TrimSpace(req.Age))
	if err != nil {
		return nil, domain.NewValidationError("Age must be a number")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := uc.profileRepo.SavePasswordHash(ctx, req.Email, hash); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		Email:        req.Email,
		Name:         req.Name,
		Age:          age,
		Gender:       req.Gender,
		InterestedIn: req.InterestedIn,
	}
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	uc.log.Info("profile created", "email", profile.Email)
	return uc.issueToken(profile)
}

// Login accepts any non-empty credential pair and persists a fixed
// demo profile. No password verification happens anywhere.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, domain.NewValidationError("Please fill in all fields")
	}

	profile := &domain.Profile{
		Email:           email,
		Name:            "Demo User",
		Age:             25,
		Gender:          domain.GenderWoman,
		InterestedIn:    domain.InterestedInMen,
		PersonalityType: domain.PersonalityTypeDefault,
	}
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	uc.log.Info("demo login", "email", email)
	return uc.issueToken(profile)
}

// Logout clears the whole store: profile, credentials and every
// conversation. There is no finer-grained deletion path.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.profileRepo.Clear(ctx)
}

// Me returns the persisted profile for the active session.
func (uc *AuthUseCase) Me(ctx context.Context) (*domain.Profile, error) {
	return uc.profileRepo.Get(ctx)
}

func (uc *AuthUseCase) issueToken(profile *domain.Profile) (*AuthResult, error) {
	expiresAt := time.Now().Add(uc.tokenTTL)
	claims := jwt.MapClaims{
		"email": profile.Email,
		"jti":   uuid.NewString(),
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Profile: profile}, nil
}

// ParseToken validates a session token and returns the email claim.
func (uc *AuthUseCase) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", fmt.Errorf("token missing email claim")
	}
	return email, nil
}
