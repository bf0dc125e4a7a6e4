// internal/collection/engine.go
//
// フォルダ/カード一覧の並び順と表示対象を決める純粋ロジック。
// 状態は一切持たず、毎回入力から計算し直します (キャッシュなし)。
package collection

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"go_flashcard_keep/internal/model"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFolders はフォルダの表示順を返します。
// 1. ピン留めグループが常に先頭
// 2. 各グループ内は OrderIndex の昇順
// 3. 同値は FolderID の昇順 (正規化済みなら発生しないが、壊れたデータでも決定的に並べる)
// 入力スライスは変更しません。
func SortFolders(folders []*model.Folder) []*model.Folder {
	sorted := make([]*model.Folder, len(folders))
	copy(sorted, folders)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsPinned != b.IsPinned {
			return a.IsPinned // ピン留めが先
		}
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		return lessUUID(a.FolderID, b.FolderID)
	})
	return sorted
}

// FilterFolders は検索文字列に一致するフォルダだけを残します。
// フォルダ名、またはフォルダ内のカードの表面 (FrontText) に
// 大文字小文字を区別しない部分一致で判定します。空の検索文字列は全件を返します。
func FilterFolders(folders []*model.Folder, q model.FolderQuery) []*model.Folder {
	search := strings.TrimSpace(q.Search)
	if search == "" {
		return folders
	}

	result := make([]*model.Folder, 0, len(folders))
	for _, f := range folders {
		if containsFold(f.Name, search) {
			result = append(result, f)
			continue
		}
		for _, c := range f.Cards {
			if containsFold(c.FrontText, search) {
				result = append(result, f)
				break
			}
		}
	}
	return result
}

// VisibleFolders はソートとフィルタをまとめて適用します
func VisibleFolders(folders []*model.Folder, q model.FolderQuery) []*model.Folder {
	return FilterFolders(SortFolders(folders), q)
}

// SortAndFilterCards はカード一覧の表示状態 (スター絞り込み・検索・並び順) を適用します。
// フィルタは 1.スター → 2.検索 → 3.ソート の順。
// 同値の並びは CardID の昇順で決定的にします。入力スライスは変更しません。
func SortAndFilterCards(cards []*model.Card, q model.CardQuery) []*model.Card {
	result := make([]*model.Card, 0, len(cards))
	search := strings.TrimSpace(q.Search)
	for _, c := range cards {
		if q.StarredOnly && !c.IsStarred {
			continue
		}
		if search != "" && !containsFold(c.FrontText, search) && !containsFold(c.BackMeaning, search) {
			continue
		}
		result = append(result, c)
	}

	order := q.Sort
	if order == "" {
		order = model.SortCreatedDesc
	}

	// ロケールを考慮した大文字小文字無視の比較 (collate.Collator は並行利用不可のため毎回生成)
	col := collate.New(language.Und, collate.IgnoreCase)

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		switch order {
		case model.SortCreatedAsc:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		case model.SortFrontAsc:
			if c := col.CompareString(a.FrontText, b.FrontText); c != 0 {
				return c < 0
			}
		case model.SortFrontDesc:
			if c := col.CompareString(a.FrontText, b.FrontText); c != 0 {
				return c > 0
			}
		default: // model.SortCreatedDesc
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return lessUUID(a.CardID, b.CardID)
	})
	return result
}

// IndexUpdate は正規化で必要になる OrderIndex の書き換え1件分です
type IndexUpdate struct {
	FolderID   uuid.UUID
	OrderIndex int
}

// Renormalize はリスト順に 0..N-1 の連続した OrderIndex を割り当て、
// 現在値と異なるものだけを更新対象として返します。
func Renormalize(sorted []*model.Folder) []IndexUpdate {
	var updates []IndexUpdate
	for i, f := range sorted {
		if f.OrderIndex != i {
			updates = append(updates, IndexUpdate{FolderID: f.FolderID, OrderIndex: i})
		}
	}
	return updates
}

// Move は from の要素を取り除き to の位置に差し込んだ新しいリストを返します。
// 範囲外のインデックスは model.ErrInvalidInput になります。
func Move(list []*model.Folder, from, to int) ([]*model.Folder, error) {
	n := len(list)
	if from < 0 || from >= n || to < 0 || to >= n {
		return nil, fmt.Errorf("move indices out of range (from=%d, to=%d, len=%d): %w", from, to, n, model.ErrInvalidInput)
	}

	moved := make([]*model.Folder, 0, n)
	moved = append(moved, list[:from]...)
	moved = append(moved, list[from+1:]...)

	result := make([]*model.Folder, 0, n)
	result = append(result, moved[:to]...)
	result = append(result, list[from])
	result = append(result, moved[to:]...)
	return result, nil
}

// Shuffle は学習セッション用にカードをランダムな順で返します。
// エンジン内で唯一の非決定的な操作です。入力スライスは変更しません。
func Shuffle(cards []*model.Card) []*model.Card {
	deck := make([]*model.Card, len(cards))
	copy(deck, cards)
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// containsFold は大文字小文字を区別しない部分一致判定です
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// lessUUID はUUID文字列表現の昇順比較です (同値キーのタイブレーク用)
func lessUUID(a, b uuid.UUID) bool {
	return a.String() < b.String()
}
