package handlers

import (
	"bytes"
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

func TestListContactsHandler(t *testing.T) {
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		query              string
		setupMocks         func(svc *MockContactLister)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:  "listed",
			query: "?user_wallet=" + testWallet,
			setupMocks: func(svc *MockContactLister) {
				svc.EXPECT().List(gomock.Any(), testWallet).Return([]models.ContactDB{{
					ID:                   7,
					UserWalletAddress:    testWallet,
					ContactWalletAddress: testOtherWallet,
					Name:                 "Bob",
					Email:                "bob@example.com",
					CreatedAt:            created,
				}}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody: `{"contacts":[{"id":"7","name":"Bob","email":"bob@example.com","walletAddress":"` +
				testOtherWallet + `","company":"","location":"","createdAt":"2025-02-01T00:00:00Z"}]}`,
		},
		{
			name:  "empty list",
			query: "?user_wallet=" + testWallet,
			setupMocks: func(svc *MockContactLister) {
				svc.EXPECT().List(gomock.Any(), testWallet).Return([]models.ContactDB{}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"contacts":[]}`,
		},
		{
			name:  "missing owner",
			query: "",
			setupMocks: func(svc *MockContactLister) {
				svc.EXPECT().List(gomock.Any(), "").Return(nil, services.ErrOwnerRequired)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"User wallet address is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockContactLister(ctrl)
			tt.setupMocks(svc)

			rec := httptest.NewRecorder()
			NewListContactsHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contacts"+tt.query, nil))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestAddContactHandler(t *testing.T) {
	validBody := AddContactRequest{
		UserWallet: testWallet,
		Contact: &ContactPayload{
			WalletAddress: testOtherWallet,
			Name:          "Bob",
			Email:         "bob@example.com",
			Company:       "Acme",
		},
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockContactAdder)
		expectedStatusCode int
		expectedError      string
	}{
		{
			name:        "created",
			requestBody: validBody,
			setupMocks: func(svc *MockContactAdder) {
				svc.EXPECT().Add(gomock.Any(), testWallet, &models.ContactInput{
					WalletAddress: testOtherWallet,
					Name:          "Bob",
					Email:         "bob@example.com",
					Company:       "Acme",
				}).Return(&models.ContactDB{
					ID:                   12,
					UserWalletAddress:    testWallet,
					ContactWalletAddress: testOtherWallet,
					Name:                 "Bob",
					Email:                "bob@example.com",
					Company:              "Acme",
				}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid json",
			requestBody:        "[",
			setupMocks:         func(svc *MockContactAdder) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "Invalid request body",
		},
		{
			name:        "missing contact object",
			requestBody: AddContactRequest{UserWallet: testWallet},
			setupMocks: func(svc *MockContactAdder) {
				svc.EXPECT().Add(gomock.Any(), testWallet, (*models.ContactInput)(nil)).Return(nil, services.ErrContactDataRequired)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedError:      "User wallet and contact data are required",
		},
		{
			name:        "self add",
			requestBody: validBody,
			setupMocks: func(svc *MockContactAdder) {
				svc.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrSelfContact)
			},
			expectedStatusCode: http.StatusConflict,
			expectedError:      "Cannot add yourself as a contact",
		},
		{
			name:        "duplicate",
			requestBody: validBody,
			setupMocks: func(svc *MockContactAdder) {
				svc.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrContactExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedError:      "Contact already exists",
		},
		{
			name:        "internal error",
			requestBody: validBody,
			setupMocks: func(svc *MockContactAdder) {
				svc.EXPECT().Add(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockContactAdder(ctrl)
			tt.setupMocks(svc)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.requestBody)
			}

			rec := httptest.NewRecorder()
			NewAddContactHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contacts", bytes.NewReader(body)))

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			resp := decodeBody(t, rec)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			assert.Equal(t, true, resp["success"])
			assert.Equal(t, "Contact added successfully", resp["message"])
			contact, ok := resp["contact"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "12", contact["id"])
			assert.Equal(t, testOtherWallet, contact["walletAddress"])
			assert.Equal(t, "Acme", contact["company"])
		})
	}
}

func TestDeleteContactHandler(t *testing.T) {
	tests := []struct {
		name               string
		query              string
		setupMocks         func(svc *MockContactDeleter)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:  "deleted",
			query: "?user_wallet=" + testWallet,
			setupMocks: func(svc *MockContactDeleter) {
				svc.EXPECT().Delete(gomock.Any(), testWallet, testOtherWallet).Return(nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"success":true,"message":"Contact deleted successfully"}`,
		},
		{
			name:  "missing owner",
			query: "",
			setupMocks: func(svc *MockContactDeleter) {
				svc.EXPECT().Delete(gomock.Any(), "", testOtherWallet).Return(services.ErrContactWalletsRequired)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       `{"error":"User wallet and contact wallet are required"}`,
		},
		{
			name:  "not found",
			query: "?user_wallet=" + testWallet,
			setupMocks: func(svc *MockContactDeleter) {
				svc.EXPECT().Delete(gomock.Any(), testWallet, testOtherWallet).Return(services.ErrContactNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"error":"Contact not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockContactDeleter(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodDelete, "/api/contacts/"+testOtherWallet+tt.query, nil)
			req = withURLParam(req, "wallet", testOtherWallet)
			rec := httptest.NewRecorder()
			NewDeleteContactHandler(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestRegisterContactHandlers(t *testing.T) {
	r := chi.NewRouter()
	hit := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(name))
		}
	}

	RegisterListContactsHandler(r, hit("list"))
	RegisterAddContactHandler(r, hit("add"))
	RegisterDeleteContactHandler(r, hit("delete"))

	tests := []struct {
		method, path, want string
	}{
		{http.MethodGet, "/contacts?user_wallet=x", "list"},
		{http.MethodPost, "/contacts", "add"},
		{http.MethodDelete, "/contacts/" + testOtherWallet, "delete"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want, rec.Body.String(), tt.path)
	}
}
