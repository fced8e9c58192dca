package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-wallet-profiles/internal/models"
	"github.com/sbilibin2017/gw-wallet-profiles/internal/services"
)

const (
	testWallet      = "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"
	testOtherWallet = "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
)

func strPtr(s string) *string { return &s }

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSaveProfileHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockProfileSaver)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name: "saved",
			requestBody: SaveProfileRequest{
				WalletAddress: testWallet,
				Name:          "Alice",
				Username:      strPtr("alice"),
			},
			setupMocks: func(svc *MockProfileSaver) {
				svc.EXPECT().Save(gomock.Any(), models.ProfileInput{
					WalletAddress: testWallet,
					Name:          "Alice",
					Username:      strPtr("alice"),
				}).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "invalid json",
			requestBody:        "{not json",
			setupMocks:         func(svc *MockProfileSaver) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Invalid request body",
		},
		{
			name:        "invalid wallet",
			requestBody: SaveProfileRequest{WalletAddress: "short"},
			setupMocks: func(svc *MockProfileSaver) {
				svc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(services.ErrInvalidWallet)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Invalid wallet address",
		},
		{
			name:        "username taken",
			requestBody: SaveProfileRequest{WalletAddress: testWallet, Username: strPtr("bob")},
			setupMocks: func(svc *MockProfileSaver) {
				svc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(services.ErrUsernameTaken)
			},
			expectedStatusCode: http.StatusConflict,
			expectedError:      "Username already taken",
		},
		{
			name:        "internal error is not echoed",
			requestBody: SaveProfileRequest{WalletAddress: testWallet},
			setupMocks: func(svc *MockProfileSaver) {
				svc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockProfileSaver(ctrl)
			tt.setupMocks(svc)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/profiles", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			NewSaveProfileHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			resp := decodeBody(t, rec)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}
			assert.Equal(t, true, resp["success"])
			assert.Equal(t, "Profile saved successfully", resp["message"])
			assert.Equal(t, testWallet, resp["walletAddress"])
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name               string
		setupMocks         func(svc *MockProfileGetter)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name: "found",
			setupMocks: func(svc *MockProfileGetter) {
				svc.EXPECT().Get(gomock.Any(), testWallet).Return(&models.ProfileDB{
					WalletAddress: testWallet,
					Name:          "Alice",
					Username:      strPtr("alice"),
					CreatedAt:     created,
					LastUpdated:   created,
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(svc *MockProfileGetter) {
				svc.EXPECT().Get(gomock.Any(), testWallet).Return(nil, services.ErrProfileNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "Profile not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockProfileGetter(ctrl)
			tt.setupMocks(svc)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/profiles/"+testWallet, nil), "wallet", testWallet)
			rec := httptest.NewRecorder()
			NewGetProfileHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			resp := decodeBody(t, rec)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}
			assert.Equal(t, testWallet, resp["walletAddress"])
			assert.Equal(t, "alice", resp["username"])
			assert.Nil(t, resp["avatarImage"])
			assert.Equal(t, "2025-01-02T03:04:05Z", resp["createdAt"])
			assert.Contains(t, resp, "lastUpdated")
		})
	}
}

func TestGetProfileByUsernameHandler(t *testing.T) {
	tests := []struct {
		name               string
		username           string
		setupMocks         func(svc *MockProfileUsernameGetter)
		expectedStatusCode int
	}{
		{
			name:     "found",
			username: "alice",
			setupMocks: func(svc *MockProfileUsernameGetter) {
				svc.EXPECT().GetByUsername(gomock.Any(), "alice").
					Return(&models.ProfileDB{WalletAddress: testWallet, Username: strPtr("alice")}, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:     "blank",
			username: " ",
			setupMocks: func(svc *MockProfileUsernameGetter) {
				svc.EXPECT().GetByUsername(gomock.Any(), " ").Return(nil, services.ErrUsernameRequired)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:     "missing",
			username: "ghost",
			setupMocks: func(svc *MockProfileUsernameGetter) {
				svc.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, services.ErrProfileNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockProfileUsernameGetter(ctrl)
			tt.setupMocks(svc)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/profiles/username/x", nil), "username", tt.username)
			rec := httptest.NewRecorder()
			NewGetProfileByUsernameHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

func TestSearchProfilesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockProfileSearcher(ctrl)
	svc.EXPECT().Search(gomock.Any(), "ali", testWallet).Return([]models.ProfileDB{
		{WalletAddress: testOtherWallet, Name: "Alice", Username: strPtr("alice")},
	}, nil)
	svc.EXPECT().Search(gomock.Any(), "", "").Return([]models.ProfileDB{}, nil)
	svc.EXPECT().Search(gomock.Any(), "boom", "").Return(nil, errors.New("db down"))

	h := NewSearchProfilesHandler(svc)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/search?q=ali&exclude="+testWallet, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProfileListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, testOtherWallet, resp.Users[0].WalletAddress)

	// empty results still render an array
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/search", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/search?q=boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestListProfilesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockProfileLister(ctrl)
	svc.EXPECT().ListAll(gomock.Any(), testWallet).Return([]models.ProfileDB{
		{WalletAddress: testOtherWallet, Name: "Bob"},
	}, nil)

	rec := httptest.NewRecorder()
	NewListProfilesHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/all?exclude="+testWallet, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProfileListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 1)
	assert.Equal(t, "Bob", resp.Users[0].Name)
	assert.Nil(t, resp.Users[0].Username)
}

func TestGetProfileByUsernameHandler_EmptySegment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockProfileUsernameGetter(ctrl)
	svc.EXPECT().GetByUsername(gomock.Any(), "").Return(nil, services.ErrUsernameRequired)

	r := chi.NewRouter()
	RegisterGetProfileByUsernameHandler(r, NewGetProfileByUsernameHandler(svc))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profiles/username/", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Username is required"}`, rec.Body.String())
}

func TestRegisterProfileHandlers(t *testing.T) {
	r := chi.NewRouter()
	hit := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(name))
		}
	}

	RegisterSaveProfileHandler(r, hit("save"))
	RegisterGetProfileHandler(r, hit("get"))
	RegisterGetProfileByUsernameHandler(r, hit("username"))
	RegisterSearchProfilesHandler(r, hit("search"))
	RegisterListProfilesHandler(r, hit("all"))

	tests := []struct {
		method, path, want string
	}{
		{http.MethodPost, "/profiles", "save"},
		{http.MethodGet, "/profiles/" + testWallet, "get"},
		{http.MethodGet, "/profiles/username/alice", "username"},
		{http.MethodGet, "/profiles/username/", "username"},
		{http.MethodGet, "/profiles/search?q=a", "search"},
		{http.MethodGet, "/profiles/all", "all"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Body.String(), tt.path)
	}
}
