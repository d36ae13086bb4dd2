// internal/model/document_test.go
package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"teacher_training_api/internal/model"
)

func TestWithStringID(t *testing.T) {
	t.Run("ObjectID rewritten to hex string", func(t *testing.T) {
		oid := primitive.NewObjectID()
		doc := bson.M{"_id": oid, "title": "A"}

		out := model.WithStringID(doc)

		assert.Equal(t, oid.Hex(), out["id"])
		assert.NotContains(t, out, "_id")
		assert.Equal(t, "A", out["title"])
		// Input document is not mutated.
		assert.Contains(t, doc, "_id")
	})

	t.Run("Document without _id passes through unchanged", func(t *testing.T) {
		doc := bson.M{"user_id": "u1", "last_position": 0}

		out := model.WithStringID(doc)

		assert.NotContains(t, out, "id")
		assert.Equal(t, doc, out)
	})

	t.Run("Non-ObjectID identifier stringified", func(t *testing.T) {
		out := model.WithStringID(bson.M{"_id": 42})

		assert.Equal(t, "42", out["id"])
	})

	t.Run("Nil document stays nil", func(t *testing.T) {
		assert.Nil(t, model.WithStringID(nil))
	})
}
