// internal/handlers/folder_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service"
	"go_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type FolderHandler struct {
	service service.FolderService
	logger  *slog.Logger
}

func NewFolderHandler(s service.FolderService, logger *slog.Logger) *FolderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FolderHandler{
		service: s,
		logger:  logger,
	}
}

// PostFolder は新しいフォルダリソースを作成するためのハンドラ
func (h *FolderHandler) PostFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostFolder"))

	var req model.PostFolderRequest
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

	folder, err := h.service.PostFolder(r.Context(), &req)
	if err != nil {
		logger.Error("Error posting folder in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder posted successfully", slog.String("folder_id", folder.FolderID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, folder, logger)
}

// GetFolders はフォルダリソースの一覧を取得するためのハンドラ。
// クエリパラメータ q で名前またはカードの単語による絞り込みができます。
func (h *FolderHandler) GetFolders(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFolders"))

	q := model.FolderQuery{
		Search: r.URL.Query().Get("q"),
	}

	folders, err := h.service.GetFolders(r.Context(), q)
	if err != nil {
		logger.Error("Error listing folders in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if folders == nil {
		folders = []*model.Folder{}
	}
	logger.Info("Folders listed successfully", slog.Int("count", len(folders)))
	webutil.RespondWithJSON(w, http.StatusOK, folders, logger)
}

// GetFolder は特定のフォルダリソースを取得するためのハンドラ
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFolder"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	folder, err := h.service.GetFolder(r.Context(), folderID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Folder not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting folder from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, folder, logger)
}

// PutFolder はフォルダの名前を変更するためのハンドラ
func (h *FolderHandler) PutFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutFolder"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	var req model.PutFolderRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutFolder request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	folder, err := h.service.PutFolder(r.Context(), folderID, &req)
	if err != nil {
		logger.Error("Error putting folder in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, folder, logger)
}

// DeleteFolder はフォルダと配下のカードを削除するためのハンドラ
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFolder"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	if err := h.service.DeleteFolder(r.Context(), folderID); err != nil {
		logger.Error("Error deleting folder in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// TogglePin はフォルダのピン留め状態を反転するためのハンドラ
func (h *FolderHandler) TogglePin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "TogglePin"))

	folderID, ok := parseFolderID(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("folder_id", folderID.String()))

	folder, err := h.service.TogglePin(r.Context(), folderID)
	if err != nil {
		logger.Error("Error toggling pin in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder pin toggled successfully", slog.Bool("is_pinned", folder.IsPinned))
	webutil.RespondWithJSON(w, http.StatusOK, folder, logger)
}

// MoveFolder は表示順の from 位置にあるフォルダを to 位置へ移動するためのハンドラ。
// 検索による絞り込み中 (q 指定時) は並び替えを受け付けません。
func (h *FolderHandler) MoveFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "MoveFolder"))

	var req model.MoveFolderRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode MoveFolder request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		handleValidationError(w, logger, err, req)
		return
	}

	q := model.FolderQuery{
		Search: r.URL.Query().Get("q"),
	}

	folders, err := h.service.MoveFolder(r.Context(), &req, q)
	if err != nil {
		logger.Error("Error moving folder in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder moved successfully", slog.Int("from", *req.From), slog.Int("to", *req.To))
	webutil.RespondWithJSON(w, http.StatusOK, folders, logger)
}

// parseFolderID はURLパラメータの folder_id を検証付きで取り出します
func parseFolderID(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	folderIDStr := chi.URLParam(r, "folder_id")
	folderID, err := uuid.Parse(folderIDStr)
	if err != nil {
		logger.Warn("Invalid folder ID format in URL", slog.String("folder_id_str", folderIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "folder_idの形式が正しくありません。", "folder_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return uuid.Nil, false
	}
	return folderID, true
}

// handleValidationError はバリデーション結果をエラーレスポンスに変換します。
// 最初のエラーを代表としてクライアントに返します。
func handleValidationError(w http.ResponseWriter, logger *slog.Logger, err error, req interface{}) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))

		firstErr := validationErrors[0]
		// 日本語メッセージに翻訳
		translatedMsg := firstErr.Translate(webutil.Trans)

		appErr := model.NewAppError(
			"VALIDATION_ERROR",
			translatedMsg,
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// バリデーションライブラリ自体のエラーなど、予期せぬエラー
	logger.Error("Unexpected error during validation", slog.Any("error", err))
	webutil.HandleError(w, logger, err)
}
