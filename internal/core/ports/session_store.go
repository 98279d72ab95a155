package ports

import (
	"context"
	"time"

	"github.com/pagecraft/blog/internal/core/domain"
)

// SessionStore keeps server-side session state keyed by session id.
type SessionStore interface {
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.SessionData, error)
	Save(ctx context.Context, id string, data *domain.SessionData, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
