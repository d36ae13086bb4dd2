// internal/service/module_service.go
package service

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"teacher_training_api/internal/config"
	"teacher_training_api/internal/model"
	"teacher_training_api/internal/repository"
)

type ModuleService interface {
	CreateModule(ctx context.Context, req *model.Module) (string, error)
	ListModules(ctx context.Context, limit int64) ([]bson.M, error)
	GetModule(ctx context.Context, moduleID string) (bson.M, error)
	SeedModules(ctx context.Context) (*model.SeedResult, error)
}

type moduleService struct {
	store  repository.Store
	cfg    config.Config
	logger *slog.Logger
}

func NewModuleService(store repository.Store, cfg config.Config, logger *slog.Logger) ModuleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &moduleService{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *moduleService) CreateModule(ctx context.Context, req *model.Module) (string, error) {
	id, err := s.store.InsertOne(ctx, model.ModuleCollection, req)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "Module created", slog.String("module_id", id))
	return id, nil
}

func (s *moduleService) ListModules(ctx context.Context, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = s.cfg.App.ListLimit
	}

	docs, err := s.store.FindMany(ctx, model.ModuleCollection, bson.M{}, limit)
	if err != nil {
		return nil, err
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, model.WithStringID(doc))
	}
	return out, nil
}

func (s *moduleService) GetModule(ctx context.Context, moduleID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(moduleID)
	if err != nil {
		return nil, model.NewAppError(
			"INVALID_URL_PARAM",
			"module_id is not a well-formed identifier.",
			"module_id",
			model.ErrInvalidInput,
		)
	}

	doc, err := s.store.FindOne(ctx, model.ModuleCollection, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	return model.WithStringID(doc), nil
}

// SeedModules inserts the fixture modules once. A non-empty collection is
// reported, never re-seeded, so the call is idempotent at collection level.
func (s *moduleService) SeedModules(ctx context.Context) (*model.SeedResult, error) {
	existing, err := s.store.Count(ctx, model.ModuleCollection, bson.M{})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &model.SeedResult{Status: "ok", Message: "Modules already exist", Count: existing}, nil
	}

	samples := sampleModules()
	for i := range samples {
		if _, err := s.store.InsertOne(ctx, model.ModuleCollection, &samples[i]); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "Sample modules seeded", slog.Int("inserted", len(samples)))
	return &model.SeedResult{Status: "ok", Inserted: len(samples)}, nil
}

// sampleModules returns the demo fixtures inserted by the seed endpoint.
func sampleModules() []model.Module {
	return []model.Module{
		{
			Title:        "Classroom Management: Routines that Work",
			Description:  "Establishing smooth routines to reduce disruptions.",
			VideoURL:     "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1529070538774-1843cb3265df?w=1200&q=80&auto=format&fit=crop",
			Category:     "Classroom",
			Timestamps: []model.Timestamp{
				{Label: "Overview", Time: 5},
				{Label: "Entry Routine", Time: 20},
				{Label: "Transitions", Time: 40},
			},
			Resources: []model.Resource{
				{Label: "Routine Checklist (PDF)", URL: "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf", Type: "pdf"},
			},
		},
		{
			Title:        "Differentiation: Tiered Tasks",
			Description:  "Design assignments that meet students where they are.",
			VideoURL:     "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1509062522246-3755977927d7?w=1200&q=80&auto=format&fit=crop",
			Category:     "Instruction",
			Timestamps: []model.Timestamp{
				{Label: "Why Tiering", Time: 6},
				{Label: "Examples", Time: 18},
			},
			Resources: []model.Resource{
				{Label: "Tiered Task Templates", URL: "https://www.africau.edu/images/default/sample.pdf", Type: "pdf"},
			},
		},
		{
			Title:        "Assessment: Quick Formative Checks",
			Description:  "Gather real-time data to adjust instruction.",
			VideoURL:     "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
			ThumbnailURL: "https://images.unsplash.com/photo-1523580846011-d3a5bc25702b?w=1200&q=80&auto=format&fit=crop",
			Category:     "Assessment",
			Timestamps: []model.Timestamp{
				{Label: "Entry Tickets", Time: 8},
				{Label: "Exit Tickets", Time: 16},
			},
			Resources: []model.Resource{
				{Label: "Formative Check Bank", URL: "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf", Type: "pdf"},
			},
		},
	}
}
