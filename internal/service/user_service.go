package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-api/internal/domain"
	"blog-api/internal/dto"
	"blog-api/internal/repository"
	"blog-api/internal/response"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService defines the interface for profile business logic
type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{userRepo: userRepo, logger: logger}
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(user), nil
}

// UpdateProfile changes name, email and avatar of the caller.
// The email must stay unique across users.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, response.NewValidationError("Name and email are required", "")
	}
	if !emailPattern.MatchString(email) {
		return nil, response.NewValidationError("Invalid email format", "")
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	other, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	}
	if other != nil && other.ID != user.ID {
		return nil, response.NewConflictError("Email is already taken", "")
	}

	user.Name = name
	user.Email = email
	if req.Avatar != nil {
		avatar := strings.TrimSpace(*req.Avatar)
		if avatar == "" {
			user.Avatar = nil
		} else {
			user.Avatar = &avatar
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, response.NewConflictError("Email is already taken", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update profile", err.Error())
	}

	s.logger.Info("Profile updated", zap.String("user_id", userID.String()))

	return &dto.UpdateProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    toProfileResponse(user),
	}, nil
}

func (s *userServiceImpl) findUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return user, nil
}

func toProfileResponse(user *domain.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
