// internal/handlers/module_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"teacher_training_api/internal/handlers"
	"teacher_training_api/internal/model"
	"teacher_training_api/internal/service/mocks"
)

func newModuleRouter(t *testing.T) (*mocks.MockModuleService, *chi.Mux) {
	t.Helper()
	mockService := mocks.NewMockModuleService(t)
	handler := handlers.NewModuleHandler(mockService, nil)
	router := chi.NewRouter()
	router.Post("/api/modules", handler.PostModule)
	router.Get("/api/modules", handler.GetModules)
	router.Get("/api/modules/{module_id}", handler.GetModule)
	router.Post("/api/seed", handler.SeedModules)
	return mockService, router
}

func TestModuleHandler_PostModule(t *testing.T) {
	validReqBody := model.Module{
		Title:    "Classroom Management: Routines that Work",
		VideoURL: "https://samplelib.com/lib/preview/mp4/sample-5s.mp4",
		Timestamps: []model.Timestamp{
			{Label: "Overview", Time: 5},
		},
	}
	expectedID := primitive.NewObjectID().Hex()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.MockModuleService)
		expectedStatus int
		expectError    bool
	}{
		{
			name: "Success - valid module",
			body: validReqBody,
			setupMock: func(m *mocks.MockModuleService) {
				m.On("CreateModule", mock.Anything, &validReqBody).
					Return(expectedID, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail - malformed JSON body",
			body:           `{"title": "bad json`,
			setupMock:      func(m *mocks.MockModuleService) {},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "Fail - missing video_url rejected before any store write",
			body:           model.Module{Title: "No video"},
			setupMock:      func(m *mocks.MockModuleService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectError:    true,
		},
		{
			name:           "Fail - video_url is not a URL",
			body:           model.Module{Title: "Bad URL", VideoURL: "not a url"},
			setupMock:      func(m *mocks.MockModuleService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectError:    true,
		},
		{
			name: "Fail - negative timestamp rejected",
			body: model.Module{
				Title:      "Bad timestamp",
				VideoURL:   "https://example.com/v.mp4",
				Timestamps: []model.Timestamp{{Label: "Intro", Time: -1}},
			},
			setupMock:      func(m *mocks.MockModuleService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectError:    true,
		},
		{
			name: "Fail - storage fault",
			body: validReqBody,
			setupMock: func(m *mocks.MockModuleService) {
				m.On("CreateModule", mock.Anything, &validReqBody).
					Return("", model.NewAppError("STORAGE_ERROR", "insert: connection refused", "", model.ErrStorage)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newModuleRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", "/api/modules", tc.body)
			rr := serveRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectError {
				verifyErrorResponse(t, rr.Body.Bytes())
				return
			}

			var resp model.CreateModuleResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, expectedID, resp.ID)
		})
	}
}

func TestModuleHandler_GetModules(t *testing.T) {
	oid := primitive.NewObjectID()
	listing := []bson.M{
		{"id": oid.Hex(), "title": "A", "video_url": "https://example.com/a.mp4"},
	}

	tests := []struct {
		name           string
		url            string
		setupMock      func(m *mocks.MockModuleService)
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "Success - default limit",
			url:  "/api/modules",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("ListModules", mock.Anything, int64(0)).
					Return(listing, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "Success - explicit limit forwarded",
			url:  "/api/modules?limit=2",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("ListModules", mock.Anything, int64(2)).
					Return(listing, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name: "Success - empty collection serializes as empty array",
			url:  "/api/modules",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("ListModules", mock.Anything, int64(0)).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "Fail - non-numeric limit",
			url:            "/api/modules?limit=abc",
			setupMock:      func(m *mocks.MockModuleService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Fail - non-positive limit",
			url:            "/api/modules?limit=0",
			setupMock:      func(m *mocks.MockModuleService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Fail - storage fault",
			url:  "/api/modules",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("ListModules", mock.Anything, int64(0)).
					Return(nil, model.NewAppError("STORAGE_ERROR", "find: timeout", "", model.ErrStorage)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newModuleRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "GET", tc.url, nil)
			rr := serveRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var respModules []bson.M
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respModules))
				assert.Len(t, respModules, tc.expectedCount)
			} else {
				verifyErrorResponse(t, rr.Body.Bytes())
			}
		})
	}
}

func TestModuleHandler_GetModule(t *testing.T) {
	oid := primitive.NewObjectID()
	stored := bson.M{"id": oid.Hex(), "title": "A", "video_url": "https://example.com/a.mp4"}

	tests := []struct {
		name           string
		moduleIDParam  string
		setupMock      func(m *mocks.MockModuleService)
		expectedStatus int
	}{
		{
			name:          "Success - existing module",
			moduleIDParam: oid.Hex(),
			setupMock: func(m *mocks.MockModuleService) {
				m.On("GetModule", mock.Anything, oid.Hex()).
					Return(stored, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:          "Fail - module not found",
			moduleIDParam: primitive.NewObjectID().Hex(),
			setupMock: func(m *mocks.MockModuleService) {
				m.On("GetModule", mock.Anything, mock.AnythingOfType("string")).
					Return(nil, model.ErrNotFound).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:          "Fail - malformed identifier returns client error",
			moduleIDParam: "not-an-object-id",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("GetModule", mock.Anything, "not-an-object-id").
					Return(nil, model.NewAppError("INVALID_URL_PARAM", "module_id is not a well-formed identifier.", "module_id", model.ErrInvalidInput)).Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:          "Fail - storage fault",
			moduleIDParam: oid.Hex(),
			setupMock: func(m *mocks.MockModuleService) {
				m.On("GetModule", mock.Anything, oid.Hex()).
					Return(nil, model.NewAppError("STORAGE_ERROR", "find one: timeout", "", model.ErrStorage)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newModuleRouter(t)
			tc.setupMock(mockService)

			url := fmt.Sprintf("/api/modules/%s", tc.moduleIDParam)
			req := createRequest(t, "GET", url, nil)
			rr := serveRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusOK {
				var respModule bson.M
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &respModule))
				assert.Equal(t, oid.Hex(), respModule["id"])
				assert.NotContains(t, respModule, "_id")
			} else {
				verifyErrorResponse(t, rr.Body.Bytes())
			}
		})
	}
}

func TestModuleHandler_SeedModules(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(m *mocks.MockModuleService)
		expectedStatus int
		expectedResult *model.SeedResult
	}{
		{
			name: "Success - fixtures inserted",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("SeedModules", mock.Anything).
					Return(&model.SeedResult{Status: "ok", Inserted: 3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedResult: &model.SeedResult{Status: "ok", Inserted: 3},
		},
		{
			name: "Success - modules already present",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("SeedModules", mock.Anything).
					Return(&model.SeedResult{Status: "ok", Message: "Modules already exist", Count: 3}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedResult: &model.SeedResult{Status: "ok", Message: "Modules already exist", Count: 3},
		},
		{
			name: "Fail - storage fault",
			setupMock: func(m *mocks.MockModuleService) {
				m.On("SeedModules", mock.Anything).
					Return(nil, model.NewAppError("STORAGE_ERROR", "count: timeout", "", model.ErrStorage)).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService, router := newModuleRouter(t)
			tc.setupMock(mockService)

			req := createRequest(t, "POST", "/api/seed", nil)
			rr := serveRequest(router, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedResult != nil {
				var result model.SeedResult
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
				assert.Equal(t, *tc.expectedResult, result)
			} else {
				verifyErrorResponse(t, rr.Body.Bytes())
			}
		})
	}
}
