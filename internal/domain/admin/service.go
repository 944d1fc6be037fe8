package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zenora/zenora-api/internal/pkg/jwt"
	"github.com/zenora/zenora-api/internal/pkg/password"
)

// RoleAdmin is the only role issued
const RoleAdmin = "admin"

// Service authenticates the single studio admin configured via env
type Service struct {
	email        string
	passwordHash string
	jwt          *jwt.Service
}

// NewService creates admin service
func NewService(email, passwordHash string, jwtSvc *jwt.Service) *Service {
	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: passwordHash,
		jwt:          jwtSvc,
	}
}

// Login checks credentials and issues an access token
func (s *Service) Login(_ context.Context, email, pass string) (*LoginResponse, error) {
	if s.email == "" || s.passwordHash == "" {
		return nil, ErrNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1

	// Runs for unknown emails too: response time must not reveal the admin email
	err := password.Check(pass, s.passwordHash)
	if errors.Is(err, password.ErrMalformedHash) {
		log.Error().Msg("ADMIN_PASSWORD_HASH is not a bcrypt hash")
		return nil, ErrNotConfigured
	}
	if err != nil || !emailOK {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(s.email, RoleAdmin)
	if err != nil {
		return nil, err
	}

	log.Info().Str("email", s.email).Time("expires_at", expiresAt).Msg("Admin logged in")
	return &LoginResponse{AccessToken: token, ExpiresAt: expiresAt.UTC().Truncate(time.Second), Email: s.email}, nil
}
