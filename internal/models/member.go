package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is an account in the membership organization. The document id is the
// identity-provider uid, so the record and its identity share one key.
type Member struct {
	UID            string              `json:"uid" bson:"_id"`
	Email          string              `json:"email" bson:"email"`
	Role           string              `json:"role" bson:"role"`
	Status         string              `json:"status" bson:"status"`
	BranchID       *primitive.ObjectID `json:"branch_id,omitempty" bson:"branch_id,omitempty"`
	FirstName      string              `json:"first_name" bson:"first_name"`
	LastName       string              `json:"last_name" bson:"last_name"`
	NationalID     string              `json:"national_id,omitempty" bson:"national_id,omitempty"`
	FatherName     string              `json:"father_name,omitempty" bson:"father_name,omitempty"`
	MotherName     string              `json:"mother_name,omitempty" bson:"mother_name,omitempty"`
	Birthplace     string              `json:"birthplace,omitempty" bson:"birthplace,omitempty"`
	Education      string              `json:"education,omitempty" bson:"education,omitempty"`
	RegistryNumber string              `json:"registry_number,omitempty" bson:"registry_number,omitempty"`
	Title          string              `json:"title,omitempty" bson:"title,omitempty"`
	TitleCode      string              `json:"title_code,omitempty" bson:"title_code,omitempty"`
	Phone          string              `json:"phone,omitempty" bson:"phone,omitempty"`
	IsActive       bool                `json:"is_active" bson:"is_active"`
	MemberSerial   uint64              `json:"member_serial,omitempty" bson:"member_serial,omitempty"`
	RejectionNote  string              `json:"rejection_note,omitempty" bson:"rejection_note,omitempty"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

// BranchHex returns the member's branch id in hex form, or "" when unassigned.
func (m *Member) BranchHex() string {
	if m.BranchID == nil {
		return ""
	}
	return m.BranchID.Hex()
}
