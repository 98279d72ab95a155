package ports

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// RegisterInput carries the validated registration form.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns domain.ErrUserNotFound for an unknown email and
	// domain.ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// CurrentUser resolves a session's user id; unknown ids yield domain.ErrUserNotFound.
	CurrentUser(ctx context.Context, id uint) (*domain.User, error)
}
