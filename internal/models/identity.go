package models

import "time"

// Identity is the account record held by the identity provider. Only the
// provider implementation touches this collection; the rest of the service
// consumes identities through the identity.Provider contract.
type Identity struct {
	UID       string    `json:"uid" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Disabled  bool      `json:"disabled" bson:"disabled"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
