package db

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RenameID moves the internal "_id" field of a stored document to a public
// "id" string field. The raw identifier key never leaves the access layer.
func RenameID(doc bson.M) bson.M {
	raw, ok := doc["_id"]
	if !ok {
		return doc
	}
	delete(doc, "_id")

	switch v := raw.(type) {
	case primitive.ObjectID:
		doc["id"] = v.Hex()
	case string:
		doc["id"] = v
	default:
		doc["id"] = fmt.Sprintf("%v", v)
	}
	return doc
}
