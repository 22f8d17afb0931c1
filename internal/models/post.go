package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a branch-scoped announcement. Posts of the same branch form an
// ordered sibling set: Order is a dense integer maintained by the ordering
// engine, not enforced by the store.
type Post struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BranchID  primitive.ObjectID `json:"branch_id" bson:"branch_id"`
	Title     string             `json:"title" bson:"title"`
	Body      string             `json:"body" bson:"body"`
	Order     int                `json:"order" bson:"order"`
	Published bool               `json:"published" bson:"published"`
	CreatedBy string             `json:"created_by" bson:"created_by"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
