// internal/handlers/progress_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"teacher_training_api/internal/model"
	"teacher_training_api/internal/service"
	"teacher_training_api/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
	logger  *slog.Logger
}

func NewProgressHandler(s service.ProgressService, logger *slog.Logger) *ProgressHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressHandler{
		service: s,
		logger:  logger,
	}
}

// PostProgress upserts the caller's viewing progress for a module.
func (h *ProgressHandler) PostProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostProgress"))

	var req model.Progress
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

	doc, err := h.service.SaveProgress(r.Context(), &req)
	if err != nil {
		logger.Error("Error saving progress in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Progress saved successfully",
		slog.String("user_id", req.UserID),
		slog.String("module_id", req.ModuleID),
	)
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

// GetProgress returns the stored progress for (user_id, module_id), or the
// zero-valued default when nothing was ever written.
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetProgress"))

	userID := r.URL.Query().Get("user_id")
	moduleID := r.URL.Query().Get("module_id")
	if userID == "" || moduleID == "" {
		logger.Warn("Missing required query parameters")
		appErr := model.NewAppError("VALIDATION_ERROR", "user_id and module_id query parameters are required.", "", model.ErrValidation)
		webutil.HandleError(w, logger, appErr)
		return
	}

	doc, err := h.service.GetProgress(r.Context(), userID, moduleID)
	if err != nil {
		logger.Error("Error getting progress from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}
