package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Parameter Structs ---

type ListMembersParams struct {
	Role     string
	Status   string
	BranchID *primitive.ObjectID
	Limit    int
	Offset   int
}

type ListAuditLogsParams struct {
	UserID          string
	Limit           int64
	CursorTimestamp time.Time
	CursorID        primitive.ObjectID
}

// OrderScope identifies one ordered sibling set: all documents of Collection
// whose FilterField equals FilterValue.
type OrderScope struct {
	Collection  string
	FilterField string
	FilterValue interface{}
}

// OrderedRecord is the projection the ordering engine works with.
type OrderedRecord struct {
	ID    primitive.ObjectID `bson:"_id"`
	Order int                `bson:"order"`
}

// OrderUpdate assigns an explicit order value to one record.
type OrderUpdate struct {
	ID    primitive.ObjectID
	Order int
}
