//go:generate mockery --name CardRepository --output ./mocks --outpkg mocks --case=underscore
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

// CardRepository インターフェース。
// カードは必ず所属フォルダ経由でアクセスするため、各操作は folderID でスコープします。
type CardRepository interface {
	Create(ctx context.Context, tx *gorm.DB, card *model.Card) error
	FindByID(ctx context.Context, db *gorm.DB, folderID, cardID uuid.UUID) (*model.Card, error)
	FindByFolder(ctx context.Context, db *gorm.DB, folderID uuid.UUID) ([]*model.Card, error)
	Update(ctx context.Context, tx *gorm.DB, folderID, cardID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, folderID, cardID uuid.UUID) error
	DeleteByFolder(ctx context.Context, tx *gorm.DB, folderID uuid.UUID) (int64, error)
}

type gormCardRepository struct{}

func NewGormCardRepository() CardRepository {
	return &gormCardRepository{}
}

func (r *gormCardRepository) Create(ctx context.Context, tx *gorm.DB, card *model.Card) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(card)
	if result.Error != nil {
		logger.Error("Error creating card in DB",
			"error", result.Error,
			"folder_id", card.FolderID.String(),
			"front_text", card.FrontText,
		)
		return fmt.Errorf("gormCardRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormCardRepository) FindByID(ctx context.Context, db *gorm.DB, folderID, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var card model.Card
	result := db.WithContext(ctx).Where("folder_id = ? AND card_id = ?", folderID, cardID).First(&card)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding card by ID in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
			"card_id", cardID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByID: %w", result.Error)
	}
	return &card, nil
}

func (r *gormCardRepository) FindByFolder(ctx context.Context, db *gorm.DB, folderID uuid.UUID) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx)
	var cards []*model.Card
	result := db.WithContext(ctx).Where("folder_id = ?", folderID).Order("created_at DESC, card_id ASC").Find(&cards)
	if result.Error != nil {
		logger.Error("Error finding cards by folder in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
		)
		return nil, fmt.Errorf("gormCardRepository.FindByFolder: %w", result.Error)
	}
	return cards, nil
}

func (r *gormCardRepository) Update(ctx context.Context, tx *gorm.DB, folderID, cardID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Card{}).Where("folder_id = ? AND card_id = ?", folderID, cardID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating card in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormCardRepository) Delete(ctx context.Context, tx *gorm.DB, folderID, cardID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("folder_id = ? AND card_id = ?", folderID, cardID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting card in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
			"card_id", cardID.String(),
		)
		return fmt.Errorf("gormCardRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// DeleteByFolder はフォルダ配下の全カードを削除します (フォルダ削除時のカスケード用)。
// 削除件数を返します。0件でもエラーにはしません。
func (r *gormCardRepository) DeleteByFolder(ctx context.Context, tx *gorm.DB, folderID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("folder_id = ?", folderID).Delete(&model.Card{})
	if result.Error != nil {
		logger.Error("Error deleting cards by folder in DB",
			"error", result.Error,
			"folder_id", folderID.String(),
		)
		return 0, fmt.Errorf("gormCardRepository.DeleteByFolder: %w", result.Error)
	}
	return result.RowsAffected, nil
}
