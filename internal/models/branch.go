package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Branch is an organizational subdivision members are assigned to. Branches are
// seeded externally and treated as read-only by this service.
type Branch struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	City      string             `json:"city" bson:"city"`
	IsActive  bool               `json:"is_active" bson:"is_active"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}
