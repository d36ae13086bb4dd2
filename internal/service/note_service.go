// internal/service/note_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"teacher_training_api/internal/model"
	"teacher_training_api/internal/repository"
)

type NoteService interface {
	// SaveNote upserts the note keyed by (user_id, module_id) and returns
	// the stored record.
	SaveNote(ctx context.Context, req *model.Note) (bson.M, error)
	// GetNote returns the stored note for the key, or an empty default when
	// no note was ever written.
	GetNote(ctx context.Context, userID, moduleID string) (bson.M, error)
}

type noteService struct {
	store  repository.Store
	logger *slog.Logger
}

func NewNoteService(store repository.Store, logger *slog.Logger) NoteService {
	if logger == nil {
		logger = slog.Default()
	}
	return &noteService{store: store, logger: logger}
}

func (s *noteService) SaveNote(ctx context.Context, req *model.Note) (bson.M, error) {
	filter := bson.M{"user_id": req.UserID, "module_id": req.ModuleID}

	if err := s.store.UpsertOne(ctx, model.NoteCollection, filter, req); err != nil {
		return nil, err
	}

	doc, err := s.store.FindOne(ctx, model.NoteCollection, filter)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Note saved",
		slog.String("user_id", req.UserID),
		slog.String("module_id", req.ModuleID),
	)
	return model.WithStringID(doc), nil
}

func (s *noteService) GetNote(ctx context.Context, userID, moduleID string) (bson.M, error) {
	filter := bson.M{"user_id": userID, "module_id": moduleID}

	doc, err := s.store.FindOne(ctx, model.NoteCollection, filter)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return bson.M{
				"user_id":   userID,
				"module_id": moduleID,
				"content":   "",
			}, nil
		}
		return nil, err
	}
	return model.WithStringID(doc), nil
}
