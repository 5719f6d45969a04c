package auth

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful registration",
			body: `{"login":"admin","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "admin", "testpassword").Return(&domain.Staff{ID: 1, Login: "admin"}, nil)
				service.EXPECT().GenerateToken(1).Return("token123", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token123",
		},
		{
			name:         "Invalid request body",
			body:         `{"login":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Login already taken",
			body: `{"login":"admin","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "admin", "testpassword").Return(nil, errors.New("login already taken"))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Token generation fails",
			body: `{"login":"admin","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "admin", "testpassword").Return(&domain.Staff{ID: 1, Login: "admin"}, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("can't generate token"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/auth/register", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.Background())
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedToken string
	}{
		{
			name: "Successful login",
			body: `{"login":"admin","password":"testpassword"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "admin", "testpassword").Return(&domain.Staff{ID: 1, Login: "admin"}, nil)
				service.EXPECT().GenerateToken(1).Return("token123", nil)
			},
			expectedCode:  http.StatusOK,
			expectedToken: "Bearer token123",
		},
		{
			name:         "Invalid request body",
			body:         `not json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid credentials",
			body: `{"login":"admin","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "admin", "wrong").Return(nil, errors.New("invalid credentials"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedToken != "" {
				assert.Equal(t, tt.expectedToken, w.Header().Get("Authorization"))
			}
		})
	}
}
