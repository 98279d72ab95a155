package domain

import "time"

const (
	AuditUserRegistered = "user.registered"
	AuditPostCreated    = "post.created"
	AuditPostUpdated    = "post.updated"
	AuditPostDeleted    = "post.deleted"
	AuditContactSent    = "contact.sent"
)

// AuditEntry records a state-changing action for later review.
type AuditEntry struct {
	Action    string            `json:"action" bson:"action"`
	ActorID   uint              `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	SubjectID uint              `json:"subject_id,omitempty" bson:"subject_id,omitempty"`
	Details   map[string]string `json:"details,omitempty" bson:"details,omitempty"`
	At        time.Time         `json:"at" bson:"at"`
}
