// internal/service/folder_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"go_flashcard_keep/internal/collection"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FolderService interface {
	PostFolder(ctx context.Context, req *model.PostFolderRequest) (*model.Folder, error)
	GetFolders(ctx context.Context, q model.FolderQuery) ([]*model.Folder, error)
	GetFolder(ctx context.Context, folderID uuid.UUID) (*model.Folder, error)
	PutFolder(ctx context.Context, folderID uuid.UUID, req *model.PutFolderRequest) (*model.Folder, error)
	DeleteFolder(ctx context.Context, folderID uuid.UUID) error
	TogglePin(ctx context.Context, folderID uuid.UUID) (*model.Folder, error)
	MoveFolder(ctx context.Context, req *model.MoveFolderRequest, q model.FolderQuery) ([]*model.Folder, error)
}

type folderService struct {
	db         *gorm.DB // トランザクション用にDB接続を持つ
	folderRepo repository.FolderRepository
	cardRepo   repository.CardRepository
	logger     *slog.Logger
}

func NewFolderService(db *gorm.DB, folderRepo repository.FolderRepository, cardRepo repository.CardRepository, logger *slog.Logger) FolderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &folderService{
		db:         db,
		folderRepo: folderRepo,
		cardRepo:   cardRepo,
		logger:     logger,
	}
}

func (s *folderService) PostFolder(ctx context.Context, req *model.PostFolderRequest) (*model.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.ErrInvalidInput
	}

	var createdFolder *model.Folder

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 新しいフォルダは末尾に入れる (OrderIndex = 現在の件数)
		count, err := s.folderRepo.Count(ctx, tx)
		if err != nil {
			s.logger.Error("Error counting folders in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		folder := &model.Folder{
			FolderID:   uuid.New(),
			Name:       name,
			IsPinned:   false,
			OrderIndex: int(count),
		}
		if err := s.folderRepo.Create(ctx, tx, folder); err != nil {
			s.logger.Error("Error creating folder in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		createdFolder = folder
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PostFolder", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return createdFolder, nil
}

// GetFolders は表示状態を適用したフォルダ一覧を返します。
// 並び順・検索の計算はエンジンに委譲し、毎回取得したデータから計算し直します。
func (s *folderService) GetFolders(ctx context.Context, q model.FolderQuery) ([]*model.Folder, error) {
	folders, err := s.folderRepo.FindAll(ctx, s.db)
	if err != nil {
		s.logger.Error("Error listing folders", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return collection.VisibleFolders(folders, q), nil
}

func (s *folderService) GetFolder(ctx context.Context, folderID uuid.UUID) (*model.Folder, error) {
	folder, err := s.folderRepo.FindByID(ctx, s.db, folderID)
	if err != nil {
		// エラーはリポジトリで変換済み
		return nil, err
	}
	return folder, nil
}

func (s *folderService) PutFolder(ctx context.Context, folderID uuid.UUID, req *model.PutFolderRequest) (*model.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, model.ErrInvalidInput
	}

	var updatedFolder *model.Folder

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		folder, err := s.folderRepo.FindByID(ctx, tx, folderID)
		if err != nil {
			return err // model.ErrNotFound or ラップ済みエラー
		}

		if name != folder.Name {
			if err := s.folderRepo.Update(ctx, tx, folderID, map[string]interface{}{"name": name}); err != nil {
				s.logger.Error("Error renaming folder in transaction", slog.Any("error", err))
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				return model.ErrInternalServer
			}
		}

		updatedFolder, err = s.folderRepo.FindByID(ctx, tx, folderID)
		if err != nil {
			s.logger.Error("Error fetching renamed folder in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PutFolder", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedFolder, nil
}

// DeleteFolder はフォルダと配下の全カードを削除し、残りのフォルダの
// OrderIndex を 0..N-1 に正規化します。全体を1トランザクションで行います。
func (s *folderService) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		if _, err := s.folderRepo.FindByID(ctx, tx, folderID); err != nil {
			return err // model.ErrNotFound (二重削除は明示エラー)
		}

		// 2. カスケード削除 (カード → フォルダの順)
		deleted, err := s.cardRepo.DeleteByFolder(ctx, tx, folderID)
		if err != nil {
			s.logger.Error("Error cascading card deletion in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		s.logger.Info("Cascade deleted cards for folder",
			slog.String("folder_id", folderID.String()),
			slog.Int64("count", deleted),
		)

		if err := s.folderRepo.Delete(ctx, tx, folderID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			s.logger.Error("Error deleting folder in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		// 3. 残りのフォルダの OrderIndex を正規化
		return s.renormalizeLocked(ctx, tx, nil)
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Transaction failed for DeleteFolder", slog.Any("error", err))
		return model.ErrInternalServer
	}
	return nil
}

// TogglePin はピン留めフラグを反転します。OrderIndex はここでは触らず、
// 表示位置の変化は次回の一覧計算に任せます。
func (s *folderService) TogglePin(ctx context.Context, folderID uuid.UUID) (*model.Folder, error) {
	var updatedFolder *model.Folder

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		folder, err := s.folderRepo.FindByID(ctx, tx, folderID)
		if err != nil {
			return err
		}

		if err := s.folderRepo.Update(ctx, tx, folderID, map[string]interface{}{"is_pinned": !folder.IsPinned}); err != nil {
			s.logger.Error("Error toggling pin in transaction", slog.Any("error", err))
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.ErrInternalServer
		}

		updatedFolder, err = s.folderRepo.FindByID(ctx, tx, folderID)
		if err != nil {
			s.logger.Error("Error fetching pinned folder in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for TogglePin", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedFolder, nil
}

// MoveFolder は現在の表示順 (ピン留め優先 + OrderIndex) の from にあるフォルダを
// to へ差し込み、全フォルダの OrderIndex を新しい並びで振り直します。
// 検索フィルタ中の並び替えは未定義操作として拒否します。
func (s *folderService) MoveFolder(ctx context.Context, req *model.MoveFolderRequest, q model.FolderQuery) ([]*model.Folder, error) {
	if strings.TrimSpace(q.Search) != "" {
		return nil, model.ErrInvalidInput
	}
	if req.From == nil || req.To == nil {
		return nil, model.ErrInvalidInput
	}

	var moved []*model.Folder

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		folders, err := s.folderRepo.FindAll(ctx, tx)
		if err != nil {
			s.logger.Error("Error listing folders for move in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		sorted := collection.SortFolders(folders)
		result, err := collection.Move(sorted, *req.From, *req.To)
		if err != nil {
			return err // model.ErrInvalidInput (範囲外)
		}

		if err := s.renormalizeLocked(ctx, tx, result); err != nil {
			return err
		}

		moved = result
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		s.logger.Error("Transaction failed for MoveFolder", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return moved, nil
}

// renormalizeLocked はトランザクション内で OrderIndex を 0..N-1 に振り直します。
// list が nil の場合は現在の表示順を取得し直してから正規化します。
// 渡されたエンティティの OrderIndex もDBと揃うように書き換えます。
func (s *folderService) renormalizeLocked(ctx context.Context, tx *gorm.DB, list []*model.Folder) error {
	if list == nil {
		folders, err := s.folderRepo.FindAll(ctx, tx)
		if err != nil {
			s.logger.Error("Error listing folders for renormalize in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		list = collection.SortFolders(folders)
	}

	for _, u := range collection.Renormalize(list) {
		if err := s.folderRepo.Update(ctx, tx, u.FolderID, map[string]interface{}{"order_index": u.OrderIndex}); err != nil {
			s.logger.Error("Error renormalizing folder order in transaction",
				slog.Any("error", err),
				slog.String("folder_id", u.FolderID.String()),
			)
			return model.ErrInternalServer
		}
	}
	for i, f := range list {
		f.OrderIndex = i
	}
	return nil
}
