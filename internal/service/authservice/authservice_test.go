package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/pkg/auth"
)

type mocks struct {
	repo     *MockRepo
	balances *MockBalanceCreator
	coins    *MockCoinWalletCreator
	hash     *auth.MockHashServiceInterface
	jwt      *auth.MockJWTServiceInterface
}

func NewMock(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:     NewMockRepo(ctrl),
		balances: NewMockBalanceCreator(ctrl),
		coins:    NewMockCoinWalletCreator(ctrl),
		hash:     auth.NewMockHashServiceInterface(ctrl),
		jwt:      auth.NewMockJWTServiceInterface(ctrl),
	}
	service := New(m.repo, m.balances, m.coins, m.hash, m.jwt, time.Hour)
	return service, m
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m mocks)
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Successful registration",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				m.balances.EXPECT().CreateBalance(gomock.Any(), 1).Return(&domain.WalletBalance{UserID: 1}, nil)
				m.coins.EXPECT().CreateWallet(gomock.Any(), 1).Return(nil)
			},
			expectedUser: &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"},
		},
		{
			name: "User already exists",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(&domain.User{ID: 1, Login: "testuser"}, nil)
			},
			expectedError: ErrUserExists,
		},
		{
			name: "Login taken concurrently",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
			},
			expectedError: ErrUserExists,
		},
		{
			name: "Loyalty wallet creation fails",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.User{ID: 2, Login: "testuser"}, nil)
				m.balances.EXPECT().CreateBalance(gomock.Any(), 2).Return(&domain.WalletBalance{UserID: 2}, nil)
				m.coins.EXPECT().CreateWallet(gomock.Any(), 2).Return(errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Register(context.Background(), "testuser", "testpassword")
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	stored := &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}

	tests := []struct {
		name          string
		password      string
		prepareMock   func(m mocks)
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(stored, nil)
				m.hash.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: stored,
		},
		{
			name:     "Unknown user",
			password: "testpassword",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Incorrect password",
			password: "wrongpassword",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByLogin(gomock.Any(), "testuser").Return(stored, nil)
				m.hash.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			user, err := service.Authenticate(context.Background(), "testuser", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUser, user)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)

	before := time.Now()
	m.jwt.EXPECT().GenerateJWT(1, gomock.Any()).DoAndReturn(func(_ int, exp time.Time) (string, error) {
		assert.WithinDuration(t, before.Add(time.Hour), exp, time.Minute)
		return "generated-token", nil
	})
	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.Equal(t, "generated-token", token)

	m.jwt.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
	_, err = service.GenerateToken(1)
	assert.EqualError(t, err, "can't generate token")
}
