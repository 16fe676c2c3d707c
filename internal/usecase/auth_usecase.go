package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fuelpark-service/internal/domain"
	"github.com/fuelpark-service/internal/domain/repository"
	"github.com/fuelpark-service/internal/pkg/errors"
	"github.com/fuelpark-service/internal/usecase/dto"
)

// AuthUseCase - регистрация и вход пользователей
type AuthUseCase struct {
	userRepo      repository.UserRepository
	loyaltyRepo   repository.LoyaltyRepository
	welcomePoints int
	hashCost      int
	logger        *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	loyaltyRepo repository.LoyaltyRepository,
	logger *zap.Logger,
	welcomePoints int,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:      userRepo,
		loyaltyRepo:   loyaltyRepo,
		welcomePoints: welcomePoints,
		hashCost:      bcrypt.DefaultCost,
		logger:        logger,
	}
}

// Register создаёт пользователя и начисляет приветственные баллы
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"username": "required",
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.hashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"password": "unsupported",
		})
	}

	user := &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user, uc.welcomePoints); err != nil {
		if !stderrors.Is(err, errors.ErrUserAlreadyExists) {
			uc.logger.Error("Failed to create user", zap.String("username", username), zap.Error(err))
		}
		return nil, err
	}

	uc.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.Int("welcome_points", uc.welcomePoints))

	return &dto.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Points:   uc.welcomePoints,
	}, nil
}

// Login проверяет пароль. Неизвестный пользователь - ErrUserNotFound,
// неверный пароль - ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	account, err := uc.loyaltyRepo.GetAccount(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Points:   account.Points,
	}, nil
}

// ChangePassword меняет пароль после проверки текущего. Неверный текущий
// пароль - ErrInvalidCredentials.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (*dto.PasswordChangedResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), uc.hashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"new_password": "unsupported",
		})
	}

	if err := uc.userRepo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return nil, err
	}

	uc.logger.Info("Password changed", zap.String("user_id", user.ID.String()))

	return &dto.PasswordChangedResponse{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}
