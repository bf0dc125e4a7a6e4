// internal/model/card.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card は単語カード1枚を表します
type Card struct {
	CardID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"card_id"`
	FolderID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"folder_id"` // 所属フォルダ (必須。孤児カードは許可しない)
	FrontText     string         `gorm:"not null" json:"front_text"`                // 表面: 単語
	BackMeaning   string         `gorm:"not null" json:"back_meaning"`              // 裏面: 意味
	BackEtymology string         `json:"back_etymology"`                            // 裏面: 語源
	BackExample   string         `json:"back_example"`                              // 裏面: 例文
	BackExampleJP string         `json:"back_example_jp"`                           // 裏面: 例文の日本語訳
	IsStarred     bool           `gorm:"not null;default:false" json:"is_starred"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)
	Folder *Folder `gorm:"foreignKey:FolderID;references:FolderID" json:"-"`
}

func (Card) TableName() string {
	return "cards"
}

// カード作成リクエストDTO
type PostCardRequest struct {
	FrontText     string `json:"front_text" validate:"required,min=1,max=200"`
	BackMeaning   string `json:"back_meaning" validate:"required,min=1,max=500"`
	BackEtymology string `json:"back_etymology" validate:"max=1000"`
	BackExample   string `json:"back_example" validate:"max=1000"`
	BackExampleJP string `json:"back_example_jp" validate:"max=1000"`
}

// カード更新（全体）リクエストDTO
type PutCardRequest struct {
	FrontText     string `json:"front_text" validate:"required,min=1,max=200"`
	BackMeaning   string `json:"back_meaning" validate:"required,min=1,max=500"`
	BackEtymology string `json:"back_etymology" validate:"max=1000"`
	BackExample   string `json:"back_example" validate:"max=1000"`
	BackExampleJP string `json:"back_example_jp" validate:"max=1000"`
}

// カード更新（部分）リクエストDTO
type PatchCardRequest struct {
	FrontText     *string `json:"front_text,omitempty" validate:"omitempty,min=1,max=200"`
	BackMeaning   *string `json:"back_meaning,omitempty" validate:"omitempty,min=1,max=500"`
	BackEtymology *string `json:"back_etymology,omitempty" validate:"omitempty,max=1000"`
	BackExample   *string `json:"back_example,omitempty" validate:"omitempty,max=1000"`
	BackExampleJP *string `json:"back_example_jp,omitempty" validate:"omitempty,max=1000"`
}
