// internal/service/study_service.go
package service

import (
	"context"
	"errors"
	"log/slog"

	"go_flashcard_keep/internal/collection"
	"go_flashcard_keep/internal/config"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyService は学習セッション用のカードデッキを組み立てます
type StudyService interface {
	GetStudyDeck(ctx context.Context, folderID uuid.UUID, q model.CardQuery) ([]*model.Card, error)
}

type studyService struct {
	db         *gorm.DB
	folderRepo repository.FolderRepository
	cardRepo   repository.CardRepository
	cfg        config.Config
	logger     *slog.Logger
}

func NewStudyService(db *gorm.DB, folderRepo repository.FolderRepository, cardRepo repository.CardRepository, cfg config.Config, logger *slog.Logger) StudyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &studyService{
		db:         db,
		folderRepo: folderRepo,
		cardRepo:   cardRepo,
		cfg:        cfg,
		logger:     logger,
	}
}

// GetStudyDeck は表示状態を適用したカードをシャッフルして返します。
// デッキの上限枚数は設定 (app.study_limit) に従います。
func (s *studyService) GetStudyDeck(ctx context.Context, folderID uuid.UUID, q model.CardQuery) ([]*model.Card, error) {
	if _, err := s.folderRepo.FindByID(ctx, s.db, folderID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("Error checking folder for study deck", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	cards, err := s.cardRepo.FindByFolder(ctx, s.db, folderID)
	if err != nil {
		s.logger.Error("Error listing cards for study deck", slog.Any("error", err))
		return nil, model.ErrInternalServer
	}

	deck := collection.Shuffle(collection.SortAndFilterCards(cards, q))

	limit := s.cfg.App.StudyLimit
	if limit > 0 && len(deck) > limit {
		deck = deck[:limit]
	}
	return deck, nil
}
