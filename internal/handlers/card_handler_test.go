// internal/handlers/card_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service/mocks"
)

func newCardRouter(t *testing.T) (*mocks.MockCardService, *chi.Mux) {
	t.Helper()
	mockService := mocks.NewMockCardService(t)
	handler := handlers.NewCardHandler(mockService, newTestLogger())

	router := chi.NewRouter()
	router.Route("/api/v1/folders/{folder_id}/cards", func(r chi.Router) {
		r.Post("/", handler.PostCard)
		r.Get("/", handler.GetCards)
		r.Get("/{card_id}", handler.GetCard)
		r.Put("/{card_id}", handler.PutCard)
		r.Patch("/{card_id}", handler.PatchCard)
		r.Delete("/{card_id}", handler.DeleteCard)
		r.Post("/{card_id}/star", handler.ToggleStar)
	})
	return mockService, router
}

// --- Test PostCard ---

func TestCardHandler_PostCard(t *testing.T) {
	folderID := uuid.New()
	basePath := "/api/v1/folders/" + folderID.String() + "/cards"

	validReq := model.PostCardRequest{
		FrontText:   "ephemeral",
		BackMeaning: "つかの間の",
	}
	expectedCard := &model.Card{
		CardID:      uuid.New(),
		FolderID:    folderID,
		FrontText:   validReq.FrontText,
		BackMeaning: validReq.BackMeaning,
		CreatedAt:   time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockCardService)
		expectedStatus int
	}{
		{
			name: "正常系: カード作成成功",
			body: validReq,
			setupMock: func(m *mocks.MockCardService) {
				m.On("PostCard", mock.Anything, folderID, &validReq).
					Return(expectedCard, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 表面が空 (バリデーションで拒否)",
			body:           model.PostCardRequest{BackMeaning: "意味のみ"},
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: フォルダが存在しない",
			body: validReq,
			setupMock: func(m *mocks.MockCardService) {
				m.On("PostCard", mock.Anything, folderID, &validReq).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newCardRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", basePath, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

// --- Test GetCards ---

func TestCardHandler_GetCards(t *testing.T) {
	folderID := uuid.New()
	basePath := "/api/v1/folders/" + folderID.String() + "/cards"
	cards := []*model.Card{
		{CardID: uuid.New(), FolderID: folderID, FrontText: "a"},
		{CardID: uuid.New(), FolderID: folderID, FrontText: "b"},
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockCardService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "正常系: 一覧取得 (デフォルトの表示状態)",
			path: basePath,
			setupMock: func(m *mocks.MockCardService) {
				m.On("GetCards", mock.Anything, folderID,
					model.CardQuery{Sort: model.SortCreatedDesc}).
					Return(cards, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "正常系: スター絞り込みと並び順がサービスに渡る",
			path: basePath + "?starred=true&sort=front_asc&q=a",
			setupMock: func(m *mocks.MockCardService) {
				m.On("GetCards", mock.Anything, folderID,
					model.CardQuery{Search: "a", StarredOnly: true, Sort: model.SortFrontAsc}).
					Return(cards[:1], nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "異常系: starred の値が不正",
			path:           basePath + "?starred=maybe",
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: sort の値が不正",
			path:           basePath + "?sort=unknown",
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newCardRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "GET", tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var got []*model.Card
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Len(t, got, tc.expectedCount)
			}
		})
	}
}

// --- Test PatchCard ---

func TestCardHandler_PatchCard(t *testing.T) {
	folderID := uuid.New()
	cardID := uuid.New()
	path := "/api/v1/folders/" + folderID.String() + "/cards/" + cardID.String()

	front := "updated"
	validReq := model.PatchCardRequest{FrontText: &front}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockCardService)
		expectedStatus int
	}{
		{
			name: "正常系: 部分更新成功",
			body: validReq,
			setupMock: func(m *mocks.MockCardService) {
				m.On("PatchCard", mock.Anything, folderID, cardID, &validReq).
					Return(&model.Card{CardID: cardID, FolderID: folderID, FrontText: front}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 更新フィールドなし",
			body:           map[string]interface{}{},
			setupMock:      func(m *mocks.MockCardService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: カードが存在しない",
			body: validReq,
			setupMock: func(m *mocks.MockCardService) {
				m.On("PatchCard", mock.Anything, folderID, cardID, &validReq).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newCardRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "PATCH", path, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

// --- Test DeleteCard ---

func TestCardHandler_DeleteCard(t *testing.T) {
	folderID := uuid.New()
	cardID := uuid.New()
	path := "/api/v1/folders/" + folderID.String() + "/cards/" + cardID.String()

	tests := []struct {
		name           string
		setupMock      func(m *mocks.MockCardService)
		expectedStatus int
	}{
		{
			name: "正常系: 削除成功は204",
			setupMock: func(m *mocks.MockCardService) {
				m.On("DeleteCard", mock.Anything, folderID, cardID).
					Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "異常系: 二重削除は404",
			setupMock: func(m *mocks.MockCardService) {
				m.On("DeleteCard", mock.Anything, folderID, cardID).
					Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newCardRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "DELETE", path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

// --- Test ToggleStar ---

func TestCardHandler_ToggleStar(t *testing.T) {
	folderID := uuid.New()
	cardID := uuid.New()
	path := "/api/v1/folders/" + folderID.String() + "/cards/" + cardID.String() + "/star"

	mockService, router := newCardRouter(t)
	mockService.On("ToggleStar", mock.Anything, folderID, cardID).
		Return(&model.Card{CardID: cardID, FolderID: folderID, IsStarred: true}, nil).Once()

	req := createRequest(t, "POST", path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.Card
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.IsStarred)
}
