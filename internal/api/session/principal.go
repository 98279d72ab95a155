package session

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// Principal is the identity behind a request. The zero value is anonymous.
type Principal struct {
	User *domain.User
}

func (p Principal) IsAuthenticated() bool { return p.User != nil }

func (p Principal) IsAdmin() bool { return p.User.IsAdmin() }

// UserID returns the user's id, or 0 when anonymous.
func (p Principal) UserID() uint {
	if p.User == nil {
		return 0
	}
	return p.User.ID
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored in ctx, or anonymous.
func PrincipalFrom(ctx context.Context) Principal {
	p, _ := ctx.Value(principalKey{}).(Principal)
	return p
}
