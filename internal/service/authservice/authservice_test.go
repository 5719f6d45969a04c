package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syahmibakri/karya-admin/internal/domain"
	"github.com/syahmibakri/karya-admin/pkg/auth"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, staffRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedStaff *domain.Staff
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				staffRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, staff *domain.Staff) (*domain.Staff, error) {
					staff.ID = 1
					return staff, nil
				})
			},
			expectedStaff: &domain.Staff{
				ID:           1,
				Login:        "admin",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Staff account already exists",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(&domain.Staff{Login: "admin"}, nil)
			},
			expectedStaff: nil,
			expectedError: errors.New("login already taken"),
		},
		{
			name:     "Error finding staff account",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(nil, errors.New("database error"))
			},
			expectedStaff: nil,
			expectedError: errors.New("database error"),
		},
		{
			name:     "Error hashing password",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedStaff: nil,
			expectedError: errors.New("hashing error"),
		},
		{
			name:     "Error creating staff account",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				staffRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedStaff: nil,
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			staff, err := service.Register(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStaff, staff)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, staffRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedStaff *domain.Staff
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(&domain.Staff{
					ID:           1,
					Login:        "admin",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedStaff: &domain.Staff{
				ID:           1,
				Login:        "admin",
				PasswordHash: "hashedpassword",
			},
			expectedError: nil,
		},
		{
			name:     "Invalid credentials - staff not found",
			login:    "admin",
			password: "testpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(nil, nil)
			},
			expectedStaff: nil,
			expectedError: errors.New("invalid credentials"),
		},
		{
			name:     "Invalid credentials - incorrect password",
			login:    "admin",
			password: "wrongpassword",
			prepareMock: func() {
				staffRepo.EXPECT().FindByLogin(context.Background(), "admin").Return(&domain.Staff{
					ID:           1,
					Login:        "admin",
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedStaff: nil,
			expectedError: errors.New("invalid credentials"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			staff, err := service.Authenticate(context.Background(), tt.login, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStaff, staff)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		staffID       int
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:    "Successful token generation",
			staffID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
			expectedError: nil,
		},
		{
			name:    "Error generating token",
			staffID: 1,
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedToken: "",
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.staffID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
