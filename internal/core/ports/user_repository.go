package ports

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
type UserRepository interface {
	// Create inserts user and returns it with ID and Role assigned. The first
	// user ever stored becomes the admin. A duplicate email yields
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
