// internal/handlers/study_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_flashcard_keep/internal/handlers"
	"go_flashcard_keep/internal/model"
	"go_flashcard_keep/internal/service/mocks"
)

func newStudyRouter(t *testing.T) (*mocks.MockStudyService, *chi.Mux) {
	t.Helper()
	mockService := mocks.NewMockStudyService(t)
	handler := handlers.NewStudyHandler(mockService, newTestLogger())

	router := chi.NewRouter()
	router.Get("/api/v1/folders/{folder_id}/study", handler.GetStudyDeck)
	return mockService, router
}

func TestStudyHandler_GetStudyDeck(t *testing.T) {
	folderID := uuid.New()
	path := "/api/v1/folders/" + folderID.String() + "/study"
	deck := []*model.Card{
		{CardID: uuid.New(), FolderID: folderID, FrontText: "a"},
		{CardID: uuid.New(), FolderID: folderID, FrontText: "b"},
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockStudyService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "正常系: デッキ取得成功",
			path: path,
			setupMock: func(m *mocks.MockStudyService) {
				m.On("GetStudyDeck", mock.Anything, folderID,
					model.CardQuery{Sort: model.SortCreatedDesc}).
					Return(deck, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "正常系: スター絞り込みがサービスに渡る",
			path: path + "?starred=true",
			setupMock: func(m *mocks.MockStudyService) {
				m.On("GetStudyDeck", mock.Anything, folderID,
					model.CardQuery{StarredOnly: true, Sort: model.SortCreatedDesc}).
					Return(deck[:1], nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "正常系: カードなしでも空配列を返す",
			path: path,
			setupMock: func(m *mocks.MockStudyService) {
				m.On("GetStudyDeck", mock.Anything, folderID,
					model.CardQuery{Sort: model.SortCreatedDesc}).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name: "異常系: フォルダが存在しない",
			path: path,
			setupMock: func(m *mocks.MockStudyService) {
				m.On("GetStudyDeck", mock.Anything, folderID,
					model.CardQuery{Sort: model.SortCreatedDesc}).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newStudyRouter(t)
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
