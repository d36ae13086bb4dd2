// internal/service/progress_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"

	"teacher_training_api/internal/model"
	"teacher_training_api/internal/repository"
)

type ProgressService interface {
	// SaveProgress upserts the progress document keyed by (user_id,
	// module_id) and returns the stored record.
	SaveProgress(ctx context.Context, req *model.Progress) (bson.M, error)
	// GetProgress returns the stored record for the key, or a zero-valued
	// default when no progress was ever written.
	GetProgress(ctx context.Context, userID, moduleID string) (bson.M, error)
}

type progressService struct {
	store  repository.Store
	logger *slog.Logger
}

func NewProgressService(store repository.Store, logger *slog.Logger) ProgressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &progressService{store: store, logger: logger}
}

func (s *progressService) SaveProgress(ctx context.Context, req *model.Progress) (bson.M, error) {
	filter := bson.M{"user_id": req.UserID, "module_id": req.ModuleID}

	// The store's atomic upsert keeps at most one document per key.
	if err := s.store.UpsertOne(ctx, model.ProgressCollection, filter, req); err != nil {
		return nil, err
	}

	doc, err := s.store.FindOne(ctx, model.ProgressCollection, filter)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Progress saved",
		slog.String("user_id", req.UserID),
		slog.String("module_id", req.ModuleID),
	)
	return model.WithStringID(doc), nil
}

func (s *progressService) GetProgress(ctx context.Context, userID, moduleID string) (bson.M, error) {
	filter := bson.M{"user_id": userID, "module_id": moduleID}

	doc, err := s.store.FindOne(ctx, model.ProgressCollection, filter)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Never-written pairs get a default record, not an error.
			return bson.M{
				"user_id":       userID,
				"module_id":     moduleID,
				"last_position": 0,
				"completed":     false,
			}, nil
		}
		return nil, err
	}
	return model.WithStringID(doc), nil
}
