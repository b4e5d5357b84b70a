package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"control-room-backend/internal/database/models"
	apperrors "control-room-backend/internal/errors"
	"control-room-backend/internal/logger"
	"control-room-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles operator accounts
type UserService struct {
	repo        repository.UserRepositoryInterface
	credentials CredentialVerifier
	validator   *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, credentials CredentialVerifier, validator *validator.Validate) *UserService {
	return &UserService{
		repo:        repo,
		credentials: credentials,
		validator:   validator,
	}
}

// CreateUserRequest represents the request to create an operator account
type CreateUserRequest struct {
	Username string          `json:"username" validate:"required,min=3,max=100"`
	FullName string          `json:"full_name" validate:"max=200"`
	BadgeID  string          `json:"badge_id" validate:"required,max=40"`
	Role     models.UserRole `json:"role" validate:"required,enum"`
	Password string          `json:"password" validate:"required,min=8,max=72"`
}

// UserResponse represents an operator account without its credentials
type UserResponse struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	FullName  string          `json:"full_name"`
	BadgeID   string          `json:"badge_id"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateUser creates an operator account with a hashed password
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	hash, err := s.credentials.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		FullName:     req.FullName,
		BadgeID:      req.BadgeID,
		Role:         req.Role,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"new_user": user.Username,
		"role":     user.Role,
	}).Info("Operator account created")

	return toUserResponse(user), nil
}

// GetUserByID retrieves an operator account by ID
func (s *UserService) GetUserByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrUserNotFound, "user")
	}
	return toUserResponse(user), nil
}

// ListUsers retrieves all operator accounts
func (s *UserService) ListUsers(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *toUserResponse(&users[i])
	}
	return responses, nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		BadgeID:   user.BadgeID,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
