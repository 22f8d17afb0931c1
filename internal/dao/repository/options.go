package repository

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/fields"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UpdateOptions collects the field mutations of one update operation. The
// provider-specific sentinels stay inside this package: CurrentDateFields maps
// to the store's server-clock stamp and UnsetFields to its field-removal
// marker, so callers never touch "$currentDate" or "$unset" directly.
type UpdateOptions struct {
	SetFields         bson.M
	UnsetFields       bson.M
	CurrentDateFields bson.M
}

func NewUpdateOptions() *UpdateOptions {
	return &UpdateOptions{
		SetFields:         bson.M{},
		UnsetFields:       bson.M{},
		CurrentDateFields: bson.M{},
	}
}

// UpdateOption defines a function that can modify the UpdateOptions.
type UpdateOption func(*UpdateOptions)

// WithStatus sets the membership status field.
func WithStatus(status string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldStatus] = status
	}
}

// WithRole sets the account role field.
func WithRole(role string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldMemberRole] = role
	}
}

// WithBranch sets the member's branch reference.
func WithBranch(branchID primitive.ObjectID) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldMemberBranch] = branchID
	}
}

// WithIsActive sets the soft-disable flag.
func WithIsActive(active bool) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldMemberIsActive] = active
	}
}

// WithMemberSerial sets the membership serial assigned on approval.
func WithMemberSerial(serial uint64) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldMemberSerial] = serial
	}
}

// WithRejectionNote sets the reviewer's rejection note.
func WithRejectionNote(note string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldMemberRejectionNote] = note
	}
}

// WithField sets an arbitrary named field. Used by the broad member-update
// path, which assembles its option list from the request's changed fields.
func WithField(name string, value interface{}) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[name] = value
	}
}

// WithoutField removes a field from the document via the store's
// field-removal sentinel.
func WithoutField(name string) UpdateOption {
	return func(o *UpdateOptions) {
		o.UnsetFields[name] = ""
	}
}

// WithServerTimestamp stamps updated_at with the store's server clock,
// avoiding client clock skew.
func WithServerTimestamp() UpdateOption {
	return func(o *UpdateOptions) {
		o.CurrentDateFields[fields.FieldUpdatedAt] = true
	}
}

// WithPublished sets a post's published flag.
func WithPublished(published bool) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldPostPublished] = published
	}
}

// WithOrder sets a post's order value.
func WithOrder(order int) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldPostOrder] = order
	}
}

// WithPostTitle sets a post's title.
func WithPostTitle(title string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldPostTitle] = title
	}
}

// WithPostBody sets a post's body.
func WithPostBody(body string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldPostBody] = body
	}
}
