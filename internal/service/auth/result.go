package auth

import (
	"time"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

// AuthResult is returned by Register and LoginWithPassword.
type AuthResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}
