// internal/handlers/note_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"teacher_training_api/internal/model"
	"teacher_training_api/internal/service"
	"teacher_training_api/internal/webutil"
)

type NoteHandler struct {
	service service.NoteService
	logger  *slog.Logger
}

func NewNoteHandler(s service.NoteService, logger *slog.Logger) *NoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteHandler{
		service: s,
		logger:  logger,
	}
}

// PostNote upserts the caller's note for a module.
func (h *NoteHandler) PostNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostNote"))

	var req model.Note
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

	doc, err := h.service.SaveNote(r.Context(), &req)
	if err != nil {
		logger.Error("Error saving note in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Note saved successfully",
		slog.String("user_id", req.UserID),
		slog.String("module_id", req.ModuleID),
	)
	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}

// GetNote returns the stored note for (user_id, module_id), or an empty
// default when nothing was ever written.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetNote"))

	userID := r.URL.Query().Get("user_id")
	moduleID := r.URL.Query().Get("module_id")
	if userID == "" || moduleID == "" {
		logger.Warn("Missing required query parameters")
		appErr := model.NewAppError("VALIDATION_ERROR", "user_id and module_id query parameters are required.", "", model.ErrValidation)
		webutil.HandleError(w, logger, appErr)
		return
	}

	doc, err := h.service.GetNote(r.Context(), userID, moduleID)
	if err != nil {
		logger.Error("Error getting note from service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, doc, logger)
}
