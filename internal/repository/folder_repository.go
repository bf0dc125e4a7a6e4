//go:generate mockery --name FolderRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_flashcard_keep/internal/middleware"
	"go_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FolderRepository インターフェース
type FolderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, folder *model.Folder) error
	FindByID(ctx context.Context, db *gorm.DB, folderID uuid.UUID) (*model.Folder, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.Folder, error)
	Update(ctx context.Context, tx *gorm.DB, folderID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, folderID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormFolderRepository struct{}

func NewGormFolderRepository() FolderRepository {
	return &gormFolderRepository{}
}

func (r *gormFolderRepository) Create(ctx context.Context, tx *gorm.DB, folder *model.Folder) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(folder)
	if result.Error != nil {
		logger.Error("Error creating folder in DB",
			"error", result.Error,
			"folder_id", folder.FolderID.String(),
			"name", folder.Name,
		)
		return fmt.Errorf("gormFolderRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormFolderRepository) FindByID(ctx context.Context, db *gorm.DB, folderID uuid.UUID) (*model.Folder, error) {
	logger := middleware.GetLogger(ctx)
	var folder model.Folder
	result := db.WithContext(ctx).Where("folder_id = ?", folderID).First(&folder)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding folder by ID in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
		)
		return nil, fmt.Errorf("gormFolderRepository.FindByID: %w", result.Error)
	}
	return &folder, nil
}

// FindAll は全フォルダをカード付きで取得します。
// 検索フィルタがカードの表面文字列を見るため、Cards をPreloadします。
// 並び順の確定はエンジン側の責務なので、ここでは安定した取得順だけを保証します。
func (r *gormFolderRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.Folder, error) {
	logger := middleware.GetLogger(ctx)
	var folders []*model.Folder
	result := db.WithContext(ctx).Preload("Cards").Order("order_index ASC, folder_id ASC").Find(&folders)
	if result.Error != nil {
		logger.Error("Error finding all folders in DB", "error", result.Error)
		return nil, fmt.Errorf("gormFolderRepository.FindAll: %w", result.Error)
	}
	return folders, nil
}

func (r *gormFolderRepository) Update(ctx context.Context, tx *gorm.DB, folderID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Folder{}).Where("folder_id = ?", folderID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating folder in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
		)
		return fmt.Errorf("gormFolderRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFolderRepository) Delete(ctx context.Context, tx *gorm.DB, folderID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("folder_id = ?", folderID).Delete(&model.Folder{})
	if result.Error != nil {
		logger.Error("Error deleting folder in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
		)
		return fmt.Errorf("gormFolderRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormFolderRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Folder{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting folders in DB", "error", result.Error)
		return 0, fmt.Errorf("gormFolderRepository.Count: %w", result.Error)
	}
	return count, nil
}
