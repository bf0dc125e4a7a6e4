// internal/handlers/folder_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
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

// --- テストヘルパー ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func newFolderRouter(t *testing.T) (*mocks.MockFolderService, *chi.Mux) {
	t.Helper()
	mockService := mocks.NewMockFolderService(t)
	handler := handlers.NewFolderHandler(mockService, newTestLogger())

	router := chi.NewRouter()
	router.Route("/api/v1/folders", func(r chi.Router) {
		r.Post("/", handler.PostFolder)
		r.Get("/", handler.GetFolders)
		r.Post("/reorder", handler.MoveFolder)
		r.Get("/{folder_id}", handler.GetFolder)
		r.Put("/{folder_id}", handler.PutFolder)
		r.Delete("/{folder_id}", handler.DeleteFolder)
		r.Post("/{folder_id}/pin", handler.TogglePin)
	})
	return mockService, router
}

// --- Test PostFolder ---

func TestFolderHandler_PostFolder(t *testing.T) {
	validReq := model.PostFolderRequest{Name: "英単語"}
	expectedFolder := &model.Folder{
		FolderID:  uuid.New(),
		Name:      validReq.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockFolderService)
		expectedStatus int
	}{
		{
			name: "正常系: フォルダ作成成功",
			body: validReq,
			setupMock: func(m *mocks.MockFolderService) {
				m.On("PostFolder", mock.Anything, &validReq).
					Return(expectedFolder, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "異常系: 名前が空 (バリデーションで拒否)",
			body:           model.PostFolderRequest{Name: ""},
			setupMock:      func(m *mocks.MockFolderService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 不正なJSONボディ",
			body:           "not-json",
			setupMock:      func(m *mocks.MockFolderService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: Service が内部エラー",
			body: validReq,
			setupMock: func(m *mocks.MockFolderService) {
				m.On("PostFolder", mock.Anything, &validReq).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFolderRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", "/api/v1/folders", tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusCreated {
				var got model.Folder
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, expectedFolder.FolderID, got.FolderID)
				assert.Equal(t, expectedFolder.Name, got.Name)
			}
		})
	}
}

// --- Test GetFolders ---

func TestFolderHandler_GetFolders(t *testing.T) {
	folders := []*model.Folder{
		{FolderID: uuid.New(), Name: "pinned", IsPinned: true},
		{FolderID: uuid.New(), Name: "normal"},
	}

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockFolderService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "正常系: 一覧取得",
			path: "/api/v1/folders",
			setupMock: func(m *mocks.MockFolderService) {
				m.On("GetFolders", mock.Anything, model.FolderQuery{}).
					Return(folders, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name: "正常系: 検索クエリがサービスに渡る",
			path: "/api/v1/folders?q=pin",
			setupMock: func(m *mocks.MockFolderService) {
				m.On("GetFolders", mock.Anything, model.FolderQuery{Search: "pin"}).
					Return(folders[:1], nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "正常系: 0件でも空配列を返す",
			path: "/api/v1/folders",
			setupMock: func(m *mocks.MockFolderService) {
				m.On("GetFolders", mock.Anything, model.FolderQuery{}).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFolderRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "GET", tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			var got []*model.Folder
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Len(t, got, tc.expectedCount)
		})
	}
}

// --- Test GetFolder ---

func TestFolderHandler_GetFolder(t *testing.T) {
	folderID := uuid.New()

	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockFolderService)
		expectedStatus int
	}{
		{
			name: "正常系: 取得成功",
			path: "/api/v1/folders/" + folderID.String(),
			setupMock: func(m *mocks.MockFolderService) {
				m.On("GetFolder", mock.Anything, folderID).
					Return(&model.Folder{FolderID: folderID, Name: "folder"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "異常系: 存在しないフォルダ",
			path: "/api/v1/folders/" + folderID.String(),
			setupMock: func(m *mocks.MockFolderService) {
				m.On("GetFolder", mock.Anything, folderID).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "異常系: 不正なUUID",
			path:           "/api/v1/folders/not-a-uuid",
			setupMock:      func(m *mocks.MockFolderService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFolderRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "GET", tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

// --- Test DeleteFolder ---

func TestFolderHandler_DeleteFolder(t *testing.T) {
	folderID := uuid.New()

	tests := []struct {
		name           string
		setupMock      func(m *mocks.MockFolderService)
		expectedStatus int
	}{
		{
			name: "正常系: 削除成功は204",
			setupMock: func(m *mocks.MockFolderService) {
				m.On("DeleteFolder", mock.Anything, folderID).
					Return(nil).Once()
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "異常系: 存在しないフォルダは404",
			setupMock: func(m *mocks.MockFolderService) {
				m.On("DeleteFolder", mock.Anything, folderID).
					Return(model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFolderRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "DELETE", "/api/v1/folders/"+folderID.String(), nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

// --- Test TogglePin ---

func TestFolderHandler_TogglePin(t *testing.T) {
	folderID := uuid.New()

	mockService, router := newFolderRouter(t)
	mockService.On("TogglePin", mock.Anything, folderID).
		Return(&model.Folder{FolderID: folderID, IsPinned: true}, nil).Once()

	req := createRequest(t, "POST", "/api/v1/folders/"+folderID.String()+"/pin", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.Folder
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.True(t, got.IsPinned)
}

// --- Test MoveFolder ---

func TestFolderHandler_MoveFolder(t *testing.T) {
	from, to := 2, 0
	validReq := model.MoveFolderRequest{From: &from, To: &to}

	tests := []struct {
		name           string
		path           string
		body           interface{}
		setupMock      func(m *mocks.MockFolderService)
		expectedStatus int
	}{
		{
			name: "正常系: 並び替え成功",
			path: "/api/v1/folders/reorder",
			body: validReq,
			setupMock: func(m *mocks.MockFolderService) {
				m.On("MoveFolder", mock.Anything, &validReq, model.FolderQuery{}).
					Return([]*model.Folder{}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: from がない (バリデーションで拒否)",
			path:           "/api/v1/folders/reorder",
			body:           map[string]interface{}{"to": 0},
			setupMock:      func(m *mocks.MockFolderService) { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "異常系: 検索フィルタ中の並び替えは400",
			path: "/api/v1/folders/reorder?q=abc",
			body: validReq,
			setupMock: func(m *mocks.MockFolderService) {
				m.On("MoveFolder", mock.Anything, &validReq, model.FolderQuery{Search: "abc"}).
					Return(nil, model.ErrInvalidInput).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newFolderRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", tc.path, tc.body)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}
