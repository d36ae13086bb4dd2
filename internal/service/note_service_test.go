// internal/service/note_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"teacher_training_api/internal/model"
	"teacher_training_api/internal/repository/mocks"
	"teacher_training_api/internal/service"
)

func TestNoteService_SaveNote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	moduleID := primitive.NewObjectID().Hex()
	keyFilter := bson.M{"user_id": userID, "module_id": moduleID}

	req := &model.Note{
		UserID:   userID,
		ModuleID: moduleID,
		Content:  "Try entry tickets on Monday.",
	}

	t.Run("Success - upserts by composite key", func(t *testing.T) {
		mockStore := mocks.NewMockStore(t)
		svc := service.NewNoteService(mockStore, nil)

		oid := primitive.NewObjectID()
		mockStore.On("UpsertOne", mock.Anything, model.NoteCollection, keyFilter, req).
			Return(nil).Once()
		mockStore.On("FindOne", mock.Anything, model.NoteCollection, keyFilter).
			Return(bson.M{"_id": oid, "user_id": userID, "module_id": moduleID, "content": req.Content}, nil).Once()

		doc, err := svc.SaveNote(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, oid.Hex(), doc["id"])
		assert.Equal(t, req.Content, doc["content"])
	})

	t.Run("Fail - storage error propagates", func(t *testing.T) {
		mockStore := mocks.NewMockStore(t)
		svc := service.NewNoteService(mockStore, nil)

		mockStore.On("UpsertOne", mock.Anything, model.NoteCollection, keyFilter, req).
			Return(model.NewAppError("STORAGE_ERROR", "upsert: connection refused", "", model.ErrStorage)).Once()

		_, err := svc.SaveNote(ctx, req)
		assert.ErrorIs(t, err, model.ErrStorage)
	})
}

func TestNoteService_GetNote(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	moduleID := primitive.NewObjectID().Hex()
	keyFilter := bson.M{"user_id": userID, "module_id": moduleID}

	t.Run("Success - existing note", func(t *testing.T) {
		mockStore := mocks.NewMockStore(t)
		svc := service.NewNoteService(mockStore, nil)

		oid := primitive.NewObjectID()
		mockStore.On("FindOne", mock.Anything, model.NoteCollection, keyFilter).
			Return(bson.M{"_id": oid, "user_id": userID, "module_id": moduleID, "content": "hello"}, nil).Once()

		doc, err := svc.GetNote(ctx, userID, moduleID)
		assert.NoError(t, err)
		assert.Equal(t, oid.Hex(), doc["id"])
		assert.Equal(t, "hello", doc["content"])
	})

	t.Run("Success - never-written pair yields empty default", func(t *testing.T) {
		mockStore := mocks.NewMockStore(t)
		svc := service.NewNoteService(mockStore, nil)

		mockStore.On("FindOne", mock.Anything, model.NoteCollection, keyFilter).
			Return(nil, model.ErrNotFound).Once()

		doc, err := svc.GetNote(ctx, userID, moduleID)
		assert.NoError(t, err)
		assert.Equal(t, userID, doc["user_id"])
		assert.Equal(t, moduleID, doc["module_id"])
		assert.Equal(t, "", doc["content"])
		assert.NotContains(t, doc, "id")
	})
}
