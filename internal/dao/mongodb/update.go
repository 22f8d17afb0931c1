package mongodb

import (
	"github.com/EmreNP/sendikaapp-sub000/internal/dao/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// buildUpdateDocument translates the repository's update options into the
// store's update document. The server-clock and field-removal sentinels
// ($currentDate, $unset) appear only here.
func buildUpdateDocument(opts ...repository.UpdateOption) bson.M {
	updateOpts := repository.NewUpdateOptions()
	for _, opt := range opts {
		opt(updateOpts)
	}

	update := bson.M{}
	if len(updateOpts.SetFields) > 0 {
		update["$set"] = updateOpts.SetFields
	}
	if len(updateOpts.UnsetFields) > 0 {
		update["$unset"] = updateOpts.UnsetFields
	}
	if len(updateOpts.CurrentDateFields) > 0 {
		update["$currentDate"] = updateOpts.CurrentDateFields
	}
	return update
}
