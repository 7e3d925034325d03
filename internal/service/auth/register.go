package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// Register creates a new applicant account with email + password.
// Returns ErrAlreadyExists if the email is already taken. Admin accounts
// are never created through this path.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Create user. Email uniqueness is enforced by a DB constraint.
	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Name:      input.Name,
		Role:      domain.UserRoleUser,
		ResumeURL: input.ResumeURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, string(hash))
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 4: Issue token
	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered via password",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
