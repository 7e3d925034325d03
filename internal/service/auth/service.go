package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/config"
	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User, passwordHash string) (*domain.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*domain.User, string, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// issueToken generates an access token for the given user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken: accessToken,
		ExpiresIn:   s.cfg.AccessTokenTTL,
		User:        user,
	}, nil
}

// ValidateToken validates an access token and returns the user ID and role.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}
