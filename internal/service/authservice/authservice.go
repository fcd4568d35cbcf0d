package authservice

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type BalanceCreator interface {
	CreateBalance(ctx context.Context, userID int) (*domain.WalletBalance, error)
}

type CoinWalletCreator interface {
	CreateWallet(ctx context.Context, userID int) error
}

type Service struct {
	userRepo    Repo
	balances    BalanceCreator
	coins       CoinWalletCreator
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	sessionTTL  time.Duration
}

var (
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const defaultSessionTTL = 15 * time.Minute

func New(repo Repo, balances BalanceCreator, coins CoinWalletCreator, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = defaultSessionTTL
	}
	return &Service{
		userRepo:    repo,
		balances:    balances,
		coins:       coins,
		hashService: hashService,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if errors.Is(err, domain.ErrConflict) {
		return nil, ErrUserExists
	}
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	if _, err = s.balances.CreateBalance(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create wallet balance", zap.Error(err))
		return nil, err
	}
	if err = s.coins.CreateWallet(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create loyalty wallet", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

// GenerateToken issues a session token that expires after the configured TTL.
func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(s.sessionTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
