package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/domain"
	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	userRepo ports.UserRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewAccountService(
	userRepo ports.UserRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *AccountService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:       uuid.New(),
		Username: username,
	}
	if err := s.validate.Struct(user); err != nil {
		s.logger.Error("User validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	user.PasswordHash = string(hash)

	createdUser, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		s.logger.Error("Failed to create user", map[string]interface{}{
			"error":    err.Error(),
			"username": username,
		})
		return nil, err
	}

	s.logger.Info("User registered successfully", map[string]interface{}{
		"user_id":  createdUser.ID,
		"username": createdUser.Username,
	})

	return createdUser, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		s.logger.Warn("Login failed, user lookup", map[string]interface{}{
			"username": username,
		})
		if errors.Is(err, domain.ErrNotFound) {
			// Unknown user and bad password are indistinguishable to the caller.
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login failed, credential mismatch", map[string]interface{}{
			"username": username,
		})
		return nil, domain.ErrUnauthorized
	}

	s.logger.Info("User logged in", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})

	return user, nil
}
