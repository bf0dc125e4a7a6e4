// internal/handlers/study_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
	logger  *slog.Logger
}

func NewStudyHandler(s service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		service: s,
		logger:  logger,
	}
}

// GetStudyDeck は学習セッション用にシャッフルされたカードデッキを返すハンドラ。
// GetCards と同じクエリパラメータで絞り込んだうえでシャッフルします。
func (h *StudyHandler) GetStudyDeck(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetStudyDeck"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	q, ok := parseCardQuery(w, r, logger)
	if !ok {
		return
	}

	deck, err := h.service.GetStudyDeck(r.Context(), folderID, q)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Folder not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error building study deck in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if deck == nil {
		deck = []*model.Card{}
	}
	logger.Info("Study deck built successfully", slog.Int("count", len(deck)))
	webutil.RespondWithJSON(w, http.StatusOK, deck, logger)
}
