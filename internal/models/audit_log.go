package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuditLog is an append-only record of a mutating operation on a member account.
// Entries are never updated or deleted once written. Timestamp is stamped with
// the store's server clock on insert; the zero value means the stamp is missing
// and readers must fall back to insertion order.
type AuditLog struct {
	ID              primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	UserID          string                 `json:"user_id" bson:"user_id"`
	Action          string                 `json:"action" bson:"action"`
	PerformedBy     string                 `json:"performed_by" bson:"performed_by"`
	PerformedByRole string                 `json:"performed_by_role" bson:"performed_by_role"`
	PreviousStatus  string                 `json:"previous_status,omitempty" bson:"previous_status,omitempty"`
	NewStatus       string                 `json:"new_status,omitempty" bson:"new_status,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Timestamp       time.Time              `json:"timestamp" bson:"timestamp,omitempty"`
}
