// internal/model/viewstate.go
package model

import "fmt"

// CardSortOrder はカード一覧の並び順です
type CardSortOrder string

const (
	SortCreatedDesc CardSortOrder = "created_desc" // 作成日時の新しい順 (デフォルト)
	SortCreatedAsc  CardSortOrder = "created_asc"  // 作成日時の古い順
	SortFrontAsc    CardSortOrder = "front_asc"    // 単語の昇順
	SortFrontDesc   CardSortOrder = "front_desc"   // 単語の降順
)

// ParseCardSortOrder はクエリパラメータの sort 値を解釈します。
// 空文字はデフォルト (created_desc) として扱います。
func ParseCardSortOrder(s string) (CardSortOrder, error) {
	switch CardSortOrder(s) {
	case "":
		return SortCreatedDesc, nil
	case SortCreatedDesc, SortCreatedAsc, SortFrontAsc, SortFrontDesc:
		return CardSortOrder(s), nil
	default:
		return "", fmt.Errorf("unknown sort order %q: %w", s, ErrInvalidInput)
	}
}

// FolderQuery はフォルダ一覧の表示状態を表す値オブジェクトです。
// エンジンに引数として渡し、グローバルな状態は持ちません。
type FolderQuery struct {
	Search string // 空文字なら検索フィルタ無効
}

// CardQuery はカード一覧の表示状態を表す値オブジェクトです
type CardQuery struct {
	Search      string
	StarredOnly bool
	Sort        CardSortOrder
}
