// internal/service/integration_test.go
//
// 実リポジトリ + インメモリSQLiteでサービス層を通しで確認する結合テスト。
// モックでは確認しづらいトランザクションと正規化の実挙動をここで押さえます。
package service

import (
	"context"
	"testing"

	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Folder{}, &model.Card{}))
	return db
}

func TestIntegration_フォルダとカードの基本フロー(t *testing.T) {
	ctx := context.Background()
	db := setupIntegrationDB(t)
	folderRepo := repository.NewGormFolderRepository()
	cardRepo := repository.NewGormCardRepository()
	folderService := NewFolderService(db, folderRepo, cardRepo, newTestLogger())
	cardService := NewCardService(db, folderRepo, cardRepo, newTestLogger())

	// 1. フォルダ作成
	folder, err := folderService.PostFolder(ctx, &model.PostFolderRequest{Name: "英単語"})
	require.NoError(t, err)
	assert.Equal(t, 0, folder.OrderIndex)

	// 2. カード作成
	card, err := cardService.PostCard(ctx, folder.FolderID, &model.PostCardRequest{
		FrontText:   "ephemeral",
		BackMeaning: "つかの間の",
	})
	require.NoError(t, err)
	assert.False(t, card.IsStarred)

	// 3. スターを付けると starredOnly の一覧に現れる
	starred, err := cardService.ToggleStar(ctx, folder.FolderID, card.CardID)
	require.NoError(t, err)
	assert.True(t, starred.IsStarred)

	cards, err := cardService.GetCards(ctx, folder.FolderID, model.CardQuery{StarredOnly: true})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, card.CardID, cards[0].CardID)

	// 4. スターを外すと starredOnly の一覧は空になる
	unstarred, err := cardService.ToggleStar(ctx, folder.FolderID, card.CardID)
	require.NoError(t, err)
	assert.False(t, unstarred.IsStarred)

	cards, err = cardService.GetCards(ctx, folder.FolderID, model.CardQuery{StarredOnly: true})
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestIntegration_フォルダ削除はカスケードと正規化を伴う(t *testing.T) {
	ctx := context.Background()
	db := setupIntegrationDB(t)
	folderRepo := repository.NewGormFolderRepository()
	cardRepo := repository.NewGormCardRepository()
	folderService := NewFolderService(db, folderRepo, cardRepo, newTestLogger())
	cardService := NewCardService(db, folderRepo, cardRepo, newTestLogger())

	// OrderIndex 0,1,2 の3フォルダを作成し、真ん中にカードを入れる
	first, err := folderService.PostFolder(ctx, &model.PostFolderRequest{Name: "first"})
	require.NoError(t, err)
	middle, err := folderService.PostFolder(ctx, &model.PostFolderRequest{Name: "middle"})
	require.NoError(t, err)
	last, err := folderService.PostFolder(ctx, &model.PostFolderRequest{Name: "last"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{first.OrderIndex, middle.OrderIndex, last.OrderIndex})

	_, err = cardService.PostCard(ctx, middle.FolderID, &model.PostCardRequest{
		FrontText:   "orphan-to-be",
		BackMeaning: "孤児になる予定",
	})
	require.NoError(t, err)

	// 真ん中を削除
	require.NoError(t, folderService.DeleteFolder(ctx, middle.FolderID))

	// カードも消えている
	_, err = cardService.GetCards(ctx, middle.FolderID, model.CardQuery{})
	assert.ErrorIs(t, err, model.ErrNotFound)

	// 残りのフォルダの OrderIndex は 0..N-1 に詰め直されている
	folders, err := folderService.GetFolders(ctx, model.FolderQuery{})
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "first", folders[0].Name)
	assert.Equal(t, 0, folders[0].OrderIndex)
	assert.Equal(t, "last", folders[1].Name)
	assert.Equal(t, 1, folders[1].OrderIndex)
}

func TestIntegration_並び替えとピン留め(t *testing.T) {
	ctx := context.Background()
	db := setupIntegrationDB(t)
	folderRepo := repository.NewGormFolderRepository()
	cardRepo := repository.NewGormCardRepository()
	folderService := NewFolderService(db, folderRepo, cardRepo, newTestLogger())

	names := []string{"A", "B", "C", "D"}
	for _, name := range names {
		_, err := folderService.PostFolder(ctx, &model.PostFolderRequest{Name: name})
		require.NoError(t, err)
	}

	// C (表示順2) を先頭へ
	from, to := 2, 0
	result, err := folderService.MoveFolder(ctx, &model.MoveFolderRequest{From: &from, To: &to}, model.FolderQuery{})
	require.NoError(t, err)

	got := make([]string, 0, len(result))
	for _, f := range result {
		got = append(got, f.Name)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, got)

	// DBにも反映されている
	folders, err := folderService.GetFolders(ctx, model.FolderQuery{})
	require.NoError(t, err)
	got = got[:0]
	for _, f := range folders {
		got = append(got, f.Name)
	}
	assert.Equal(t, []string{"C", "A", "B", "D"}, got)

	// D をピン留めすると先頭グループに移る (OrderIndex はそのまま)
	var dID = folders[3].FolderID
	pinned, err := folderService.TogglePin(ctx, dID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	folders, err = folderService.GetFolders(ctx, model.FolderQuery{})
	require.NoError(t, err)
	got = got[:0]
	for _, f := range folders {
		got = append(got, f.Name)
	}
	assert.Equal(t, []string{"D", "C", "A", "B"}, got)
}
