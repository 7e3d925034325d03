package auth

import (
	"net/mail"

	"github.com/Immonkei/Backend-Mobile-MAD/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt ignores bytes past 72.
	maxPasswordLength = 72
)

// RegisterInput holds parameters for password registration.
type RegisterInput struct {
	Email     string
	Name      string
	Password  string
	ResumeURL *string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > 254 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}

	if i.ResumeURL != nil && len(*i.ResumeURL) > 2048 {
		errs = append(errs, domain.FieldError{Field: "resume_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for password login.
type LoginPasswordInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
