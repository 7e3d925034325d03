package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// LoginWithPassword authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.TrimSpace(input.Email)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Find user and password hash by email
	user, hash, err := s.users.GetCredentialsByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.LoginWithPassword get user: %w", err)
	}

	// Step 3: Verify password
	if hash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	// Step 4: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via password",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))

	return result, nil
}
