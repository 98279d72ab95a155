package ports

import (
	"context"

	"github.com/pagecraft/blog/internal/core/domain"
)

// AuditLog persists audit entries. Failures never abort the caller's operation.
type AuditLog interface {
	Record(ctx context.Context, entry domain.AuditEntry) error
}
