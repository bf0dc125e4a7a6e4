// internal/model/folder.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Folder は単語カードをまとめるフォルダを表します
type Folder struct {
	FolderID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"folder_id"`
	Name       string         `gorm:"not null" json:"name"`
	IsPinned   bool           `gorm:"not null;default:false" json:"is_pinned"` // ピン留めフォルダは常に先頭グループ
	OrderIndex int            `gorm:"not null;index" json:"order_index"`       // 手動並び替えの位置 (正規化後は 0..N-1 で連続)
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用

	// 関連 (Preload用)。フォルダ削除時はサービス層で明示的にカスケード削除する
	Cards []Card `gorm:"foreignKey:FolderID;references:FolderID" json:"-"`
}

func (Folder) TableName() string {
	return "folders"
}

// フォルダ作成リクエストDTO
type PostFolderRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// フォルダ名変更リクエストDTO
type PutFolderRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// フォルダ並び替えリクエストDTO
// 0 が有効値のためポインタで required を判定する
type MoveFolderRequest struct {
	From *int `json:"from" validate:"required,min=0"`
	To   *int `json:"to" validate:"required,min=0"`
}
