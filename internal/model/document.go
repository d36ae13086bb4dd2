// internal/model/document.go
package model

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WithStringID rewrites an outbound document's store-internal "_id" into a
// string "id" field. Applied uniformly to every document returned to a
// caller; synthesized default records carry no "_id" and pass through
// without an "id".
func WithStringID(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := make(bson.M, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	if id, ok := doc["_id"]; ok {
		if oid, ok := id.(primitive.ObjectID); ok {
			out["id"] = oid.Hex()
		} else {
			out["id"] = fmt.Sprintf("%v", id)
		}
	}
	return out
}
