// internal/handlers/card_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

func NewCardHandler(s service.CardService, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		service: s,
		logger:  logger,
	}
}

// PostCard はフォルダ配下に新しいカードリソースを作成するためのハンドラ
func (h *CardHandler) PostCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCard"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	var req model.PostCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	card, err := h.service.PostCard(r.Context(), folderID, &req)
	if err != nil {
		logger.Error("Error posting card in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card posted successfully", slog.String("card_id", card.CardID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, card, logger)
}

// GetCards はフォルダ配下のカード一覧を取得するためのハンドラ。
// クエリパラメータ: q (検索), starred (スターのみ), sort (並び順)
func (h *CardHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	q, ok := parseCardQuery(w, r, logger)
	if !ok {
		return
	}

	cards, err := h.service.GetCards(r.Context(), folderID, q)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Folder not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error listing cards in service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.Card{}
	}
	logger.Info("Cards listed successfully", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// GetCard は特定のカードリソースを取得するためのハンドラ
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCard"))

	folderID, cardID, ok := parseCardPath(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()), slog.String("card_id", cardID.String()))

	card, err := h.service.GetCard(r.Context(), folderID, cardID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Card not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting card from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PutCard は特定のカードリソースを完全に置き換えるためのハンドラ
func (h *CardHandler) PutCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutCard"))

	folderID, cardID, ok := parseCardPath(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()), slog.String("card_id", cardID.String()))

	var req model.PutCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutCard request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	card, err := h.service.PutCard(r.Context(), folderID, cardID, &req)
	if err != nil {
		logger.Error("Error putting card in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// PatchCard は特定のカードリソースの一部を更新するためのハンドラ
func (h *CardHandler) PatchCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchCard"))

	folderID, cardID, ok := parseCardPath(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()), slog.String("card_id", cardID.String()))

	var req model.PatchCardRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PatchCard request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if req.FrontText == nil && req.BackMeaning == nil && req.BackEtymology == nil &&
		req.BackExample == nil && req.BackExampleJP == nil {
		logger.Warn("PatchCard called with no fields provided for update", slog.Any("request", req))
		appErr := model.NewAppError("VALIDATION_ERROR", "更新するフィールドが指定されていません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	card, err := h.service.PatchCard(r.Context(), folderID, cardID, &req)
	if err != nil {
		logger.Error("Error patching card in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card patched successfully")
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// DeleteCard は特定のカードリソースを削除するためのハンドラ
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	folderID, cardID, ok := parseCardPath(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()), slog.String("card_id", cardID.String()))

	if err := h.service.DeleteCard(r.Context(), folderID, cardID); err != nil {
		logger.Error("Error deleting card in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// ToggleStar はカードのスター状態を反転するためのハンドラ
func (h *CardHandler) ToggleStar(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleStar"))

	folderID, cardID, ok := parseCardPath(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()), slog.String("card_id", cardID.String()))

	card, err := h.service.ToggleStar(r.Context(), folderID, cardID)
	if err != nil {
		logger.Error("Error toggling star in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card star toggled successfully", slog.Bool("is_starred", card.IsStarred))
	webutil.RespondWithJSON(w, http.StatusOK, card, logger)
}

// parseCardPath はURLパラメータの folder_id と card_id を検証付きで取り出します
func parseCardPath(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, uuid.UUID, bool) {
	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	cardIDStr := chi.URLParam(r, "card_id")
	cardID, err := uuid.Parse(cardIDStr)
	if err != nil {
		logger.Warn("Invalid card ID format in URL", slog.String("card_id_str", cardIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "card_idの形式が正しくありません。", "card_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, uuid.Nil, false
	}
	return folderID, cardID, true
}

// parseCardQuery はカード一覧系エンドポイント共通のクエリパラメータを解釈します
func parseCardQuery(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (model.CardQuery, bool) {
	q := model.CardQuery{
		Search: r.URL.Query().Get("q"),
	}

	if starredStr := r.URL.Query().Get("starred"); starredStr != "" {
		starred, err := strconv.ParseBool(starredStr)
		if err != nil {
			logger.Warn("Invalid starred query parameter", slog.String("starred", starredStr))
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "starredの値が正しくありません。", "starred", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return model.CardQuery{}, false
		}
		q.StarredOnly = starred
	}

	sort, err := model.ParseCardSortOrder(r.URL.Query().Get("sort"))
	if err != nil {
		logger.Warn("Invalid sort query parameter", slog.String("sort", r.URL.Query().Get("sort")))
		appErr := model.NewAppError("INVALID_QUERY_PARAM", "sortの値が正しくありません。", "sort", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return model.CardQuery{}, false
	}
	q.Sort = sort

	return q, true
}
