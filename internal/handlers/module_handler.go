// internal/handlers/module_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"teacher_training_api/internal/model"
	"teacher_training_api/internal/service"
	"teacher_training_api/internal/webutil"
)

type ModuleHandler struct {
	service service.ModuleService
	logger  *slog.Logger
}

func NewModuleHandler(s service.ModuleService, logger *slog.Logger) *ModuleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ModuleHandler{
		service: s,
		logger:  logger,
	}
}

// PostModule creates a new training module.
func (h *ModuleHandler) PostModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostModule"))

	var req model.Module
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "The request body is not valid JSON.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if appErr := webutil.ValidateStruct(&req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	id, err := h.service.CreateModule(r.Context(), &req)
	if err != nil {
		logger.Error("Error creating module in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module created successfully", slog.String("module_id", id))
	webutil.RespondWithJSON(w, http.StatusOK, model.CreateModuleResponse{ID: id}, logger)
}

// GetModules lists modules, capped at the optional limit query parameter.
func (h *ModuleHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModules"))

	var limit int64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || parsed <= 0 {
			logger.Warn("Invalid limit query parameter", slog.String("limit", limitStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "limit must be a positive integer.", "limit", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		limit = parsed
	}

	modules, err := h.service.ListModules(r.Context(), limit)
	if err != nil {
		logger.Error("Error listing modules in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if modules == nil {
		modules = []bson.M{}
	}
	logger.Info("Modules listed successfully", slog.Int("count", len(modules)))
	webutil.RespondWithJSON(w, http.StatusOK, modules, logger)
}

// GetModule looks up one module by its identifier.
func (h *ModuleHandler) GetModule(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetModule"))

	moduleID := chi.URLParam(r, "module_id")
	logger = logger.With(slog.String("module_id", moduleID))

	module, err := h.service.GetModule(r.Context(), moduleID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Module not found")
		} else {
			logger.Error("Error getting module from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Module retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, module, logger)
}

// SeedModules inserts the demo fixtures when the collection is empty.
func (h *ModuleHandler) SeedModules(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SeedModules"))

	result, err := h.service.SeedModules(r.Context())
	if err != nil {
		logger.Error("Error seeding modules in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Seed completed", slog.Int("inserted", result.Inserted), slog.Int64("existing", result.Count))
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
