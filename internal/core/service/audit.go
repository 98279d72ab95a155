package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pagecraft/blog/internal/core/domain"
	"github.com/pagecraft/blog/internal/core/ports"
)

// NopAudit discards every entry. Used when no audit store is configured.
type NopAudit struct{}

func (NopAudit) Record(context.Context, domain.AuditEntry) error { return nil }

// record writes entry to the audit log; a failure is logged and swallowed.
func record(ctx context.Context, audit ports.AuditLog, log zerolog.Logger, entry domain.AuditEntry) {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	if err := audit.Record(ctx, entry); err != nil {
		log.Warn().Err(err).Str("action", entry.Action).Msg("failed to record audit entry")
	}
}
