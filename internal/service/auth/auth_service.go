// Package auth implements credential verification and token issuance.
// Authentication state lives entirely in the signed token: the server
// keeps no sessions, and a request is authenticated iff its bearer
// token verifies.
package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"voting-be/internal/domain"
	"voting-be/internal/repository"
	"voting-be/pkg/errors"
	"voting-be/pkg/logger"
)

// Issuer and Audience identify tokens minted by this service.
const (
	Issuer   = "voting-be"
	Audience = "voting-be"
)

// Config holds the credential settings the service needs
type Config struct {
	Secret        string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string
	BcryptCost    int
}

// Service implements the AuthService interface
type Service struct {
	cfg    Config
	users  repository.UserRepository
	logger *logger.Logger
}

// NewService creates a new auth service
func NewService(cfg Config, users repository.UserRepository, logger *logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		users:  users,
		logger: logger,
	}
}

// Login authenticates a regular user by username and password. Every
// failure path returns the same invalid-credentials error so callers
// cannot distinguish an unknown username from a wrong password or a
// hashing failure.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, errors.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.WithField("username", username).Debug("Password verification failed")
		return nil, errors.NewInvalidCredentialsError()
	}

	return s.generate(user.ID, domain.RoleUser)
}

// LoginAdmin authenticates the single configured admin account. Both
// fields are compared in constant time before either result is
// consulted.
func (s *Service) LoginAdmin(ctx context.Context, username, password string) (*domain.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword))
	if userOK&passOK != 1 {
		return nil, errors.NewInvalidCredentialsError()
	}

	return s.generate(domain.AdminSubject, domain.RoleAdmin)
}

// Verify parses and validates a token string, returning its claims.
// Malformed input, a bad signature, a wrong issuer or audience, and an
// expired or not-yet-valid token all fail the same way.
func (s *Service) Verify(tokenString string) (*domain.AccessClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&domain.AccessClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.NewAuthenticationError("unexpected signing method")
			}
			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.NewAuthenticationError("invalid or expired token")
	}

	claims, ok := token.Claims.(*domain.AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.NewAuthenticationError("invalid token claims")
	}
	if !claims.Role.Valid() {
		return nil, errors.NewAuthenticationError("unknown role")
	}
	if claims.Subject == "" {
		return nil, errors.NewAuthenticationError("token has no subject")
	}

	return claims, nil
}

// HashPassword hashes a plaintext password at the configured cost
func (s *Service) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return "", errors.NewInternalError("failed to hash password", err)
	}
	return string(hashed), nil
}

// generate mints a signed token for the given subject and role
func (s *Service) generate(subject string, role domain.Role) (*domain.LoginResponse, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.TokenTTL)

	claims := domain.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, errors.NewInternalError("failed to sign token", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"subject": subject,
		"role":    string(role),
	}).Debug("Access token issued")

	return &domain.LoginResponse{
		AccessToken: signed,
		ValidUntil:  expiresAt,
	}, nil
}
