// internal/service/card_service.go
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

type CardService interface {
	PostCard(ctx context.Context, folderID uuid.UUID, req *model.PostCardRequest) (*model.Card, error)
	GetCards(ctx context.Context, folderID uuid.UUID, q model.CardQuery) ([]*model.Card, error)
	GetCard(ctx context.Context, folderID, cardID uuid.UUID) (*model.Card, error)
	PutCard(ctx context.Context, folderID, cardID uuid.UUID, req *model.PutCardRequest) (*model.Card, error)
	PatchCard(ctx context.Context, folderID, cardID uuid.UUID, req *model.PatchCardRequest) (*model.Card, error)
	DeleteCard(ctx context.Context, folderID, cardID uuid.UUID) error
	ToggleStar(ctx context.Context, folderID, cardID uuid.UUID) (*model.Card, error)
}

type cardService struct {
	db         *gorm.DB
	folderRepo repository.FolderRepository
	cardRepo   repository.CardRepository
	logger     *slog.Logger
}

func NewCardService(db *gorm.DB, folderRepo repository.FolderRepository, cardRepo repository.CardRepository, logger *slog.Logger) CardService {
	if logger == nil {
		logger = slog.Default()
	}
	return &cardService{
		db:         db,
		folderRepo: folderRepo,
		cardRepo:   cardRepo,
		logger:     logger,
	}
}

func (s *cardService) PostCard(ctx context.Context, folderID uuid.UUID, req *model.PostCardRequest) (*model.Card, error) {
	// 表面と意味は必須。バリデーションに通らない限りストアには触らない
	frontText := strings.TrimSpace(req.FrontText)
	backMeaning := strings.TrimSpace(req.BackMeaning)
	if frontText == "" || backMeaning == "" {
		return nil, model.ErrInvalidInput
	}

	var createdCard *model.Card

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 所属フォルダの存在確認 (孤児カードを作らない)
		if _, err := s.folderRepo.FindByID(ctx, tx, folderID); err != nil {
			return err // model.ErrNotFound
		}

		// 2. カードを作成
		card := &model.Card{
			CardID:        uuid.New(),
			FolderID:      folderID,
			FrontText:     frontText,
			BackMeaning:   backMeaning,
			BackEtymology: req.BackEtymology,
			BackExample:   req.BackExample,
			BackExampleJP: req.BackExampleJP,
			IsStarred:     false,
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			s.logger.Error("Error creating card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}

		createdCard = card
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for PostCard", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return createdCard, nil
}

// GetCards は表示状態 (スター絞り込み・検索・並び順) を適用したカード一覧を返します
func (s *cardService) GetCards(ctx context.Context, folderID uuid.UUID, q model.CardQuery) ([]*model.Card, error) {
	if _, err := s.folderRepo.FindByID(ctx, s.db, folderID); err != nil {
		return nil, err // model.ErrNotFound
	}

	cards, err := s.cardRepo.FindByFolder(ctx, s.db, folderID)
	if err != nil {
		s.logger.Error("Error listing cards", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}
	return collection.SortAndFilterCards(cards, q), nil
}

func (s *cardService) GetCard(ctx context.Context, folderID, cardID uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, folderID, cardID)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) PutCard(ctx context.Context, folderID, cardID uuid.UUID, req *model.PutCardRequest) (*model.Card, error) {
	frontText := strings.TrimSpace(req.FrontText)
	backMeaning := strings.TrimSpace(req.BackMeaning)
	if frontText == "" || backMeaning == "" {
		return nil, model.ErrInvalidInput
	}

	updates := map[string]interface{}{
		"front_text":      frontText,
		"back_meaning":    backMeaning,
		"back_etymology":  req.BackEtymology,
		"back_example":    req.BackExample,
		"back_example_jp": req.BackExampleJP,
	}

	return s.updateCard(ctx, folderID, cardID, updates)
}

func (s *cardService) PatchCard(ctx context.Context, folderID, cardID uuid.UUID, req *model.PatchCardRequest) (*model.Card, error) {
	updates := make(map[string]interface{})
	if req.FrontText != nil {
		v := strings.TrimSpace(*req.FrontText)
		if v == "" {
			return nil, model.ErrInvalidInput
		}
		updates["front_text"] = v
	}
	if req.BackMeaning != nil {
		v := strings.TrimSpace(*req.BackMeaning)
		if v == "" {
			return nil, model.ErrInvalidInput
		}
		updates["back_meaning"] = v
	}
	// 補足フィールドは空文字でのクリアを許可する
	if req.BackEtymology != nil {
		updates["back_etymology"] = *req.BackEtymology
	}
	if req.BackExample != nil {
		updates["back_example"] = *req.BackExample
	}
	if req.BackExampleJP != nil {
		updates["back_example_jp"] = *req.BackExampleJP
	}

	return s.updateCard(ctx, folderID, cardID, updates)
}

func (s *cardService) DeleteCard(ctx context.Context, folderID, cardID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.cardRepo.Delete(ctx, tx, folderID, cardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound // 二重削除は明示エラー (クラッシュはさせない)
			}
			s.logger.Error("Error deleting card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		s.logger.Error("Transaction failed for DeleteCard", slog.Any("error", err))
		return model.ErrInternalServer
	}
	return nil
}

func (s *cardService) ToggleStar(ctx context.Context, folderID, cardID uuid.UUID) (*model.Card, error) {
	var updatedCard *model.Card

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, folderID, cardID)
		if err != nil {
			return err
		}

		if err := s.cardRepo.Update(ctx, tx, folderID, cardID, map[string]interface{}{"is_starred": !card.IsStarred}); err != nil {
			s.logger.Error("Error toggling star in transaction", slog.Any("error", err))
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.ErrInternalServer
		}

		updatedCard, err = s.cardRepo.FindByID(ctx, tx, folderID, cardID)
		if err != nil {
			s.logger.Error("Error fetching starred card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for ToggleStar", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedCard, nil
}

// updateCard は存在確認・更新・再取得を1トランザクションで行う共通処理です
func (s *cardService) updateCard(ctx context.Context, folderID, cardID uuid.UUID, updates map[string]interface{}) (*model.Card, error) {
	var updatedCard *model.Card

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cardRepo.FindByID(ctx, tx, folderID, cardID); err != nil {
			return err // model.ErrNotFound
		}

		if err := s.cardRepo.Update(ctx, tx, folderID, cardID, updates); err != nil {
			s.logger.Error("Error updating card in transaction", slog.Any("error", err))
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.ErrInternalServer
		}

		var err error
		updatedCard, err = s.cardRepo.FindByID(ctx, tx, folderID, cardID)
		if err != nil {
			s.logger.Error("Error fetching updated card in transaction", slog.Any("error", err))
			return model.ErrInternalServer
		}
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Transaction failed for updateCard", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	return updatedCard, nil
}
