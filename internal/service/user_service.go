package service

import (
	"context"
	"fmt"

	"github.com/medicall/medicall/internal/model"
	"github.com/medicall/medicall/internal/repository"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo *repository.UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser регистрирует профиль больницы или работника.
// Аутентификация живёт снаружи, здесь только профиль
func (s *UserService) CreateUser(ctx context.Context, user *model.User) error {
	if user.Email == "" || user.Name == "" {
		return fmt.Errorf("%w: email and name are required", ErrInvalid)
	}
	if user.UserType != model.UserTypeHospital && user.UserType != model.UserTypeWorker {
		return fmt.Errorf("%w: user_type must be hospital or worker", ErrInvalid)
	}

	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: user with this email already exists", ErrInvalid)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return err
	}

	s.logger.Info("User profile created",
		zap.Int64("user_id", user.ID),
		zap.String("user_type", string(user.UserType)),
	)

	return nil
}

// GetUser получает профиль пользователя
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}
