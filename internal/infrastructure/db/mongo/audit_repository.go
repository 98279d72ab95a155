package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pagecraft/blog/internal/core/domain"
)

const collectionAudit = "audit_log"

// AuditRepository appends audit entries to the audit_log collection.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAudit)}
}

// Record inserts one entry.
func (r *AuditRepository) Record(ctx context.Context, entry domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, auditDocument(entry)); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// EnsureIndexes creates the lookup indexes on the audit collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "at", Value: -1}}},
		{Keys: bson.D{{Key: "action", Value: 1}, {Key: "at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func auditDocument(e domain.AuditEntry) bson.M {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	doc := bson.M{
		"action": e.Action,
		"at":     at.UTC(),
	}
	if e.ActorID != 0 {
		doc["actor_id"] = e.ActorID
	}
	if e.SubjectID != 0 {
		doc["subject_id"] = e.SubjectID
	}
	if len(e.Details) > 0 {
		doc["details"] = e.Details
	}
	return doc
}
