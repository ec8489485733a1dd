package user

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error)
		GetUserByID(ctx context.Context, id string) (domain.UserResponse, error)
		UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, id string) error
	}

	userService struct {
		userRepository UserRepository
	}
)

func NewUserService(userRepository UserRepository) UserService {
	return &userService{userRepository: userRepository}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterUserRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context, page, limit int) ([]domain.UserResponse, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.UserResponse
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}

	return response, count, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, id string, req domain.UpdateUserRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrEmailAlreadyRegistered
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.userRepository.GetUserByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.DeleteUser(ctx, id)
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
