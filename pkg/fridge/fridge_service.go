package fridge

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"WasteLess-API/pkg/user"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateFridge(ctx context.Context, req domain.CreateFridgeRequest) (domain.FridgeResponse, error)
		GetFridges(ctx context.Context, page, limit int) ([]domain.FridgeResponse, int64, error)
		GetFridgeByID(ctx context.Context, id string) (domain.FridgeResponse, error)
		UpdateFridge(ctx context.Context, id string, req domain.UpdateFridgeRequest) (domain.FridgeResponse, error)
		DeleteFridge(ctx context.Context, id string) error

		ShareFridge(ctx context.Context, fridgeID string, req domain.ShareFridgeRequest) (domain.FridgeUserResponse, error)
		UnshareFridge(ctx context.Context, fridgeID, userID string) error
		GetFridgeShares(ctx context.Context, fridgeID string) ([]domain.FridgeUserResponse, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
		userRepository   user.UserRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository, userRepository user.UserRepository) FridgeService {
	return &fridgeService{
		fridgeRepository: fridgeRepository,
		userRepository:   userRepository,
	}
}

func (s *fridgeService) CreateFridge(ctx context.Context, req domain.CreateFridgeRequest) (domain.FridgeResponse, error) {
	fridge := &entities.Fridge{
		ID:           uuid.New(),
		Name:         req.Name,
		LocationDesc: req.LocationDesc,
	}

	if err := s.fridgeRepository.CreateFridge(ctx, fridge); err != nil {
		return domain.FridgeResponse{}, err
	}

	return toFridgeResponse(fridge), nil
}

func (s *fridgeService) GetFridges(ctx context.Context, page, limit int) ([]domain.FridgeResponse, int64, error) {
	fridges, count, err := s.fridgeRepository.GetFridges(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.FridgeResponse
	for _, fridge := range fridges {
		response = append(response, toFridgeResponse(fridge))
	}

	return response, count, nil
}

func (s *fridgeService) GetFridgeByID(ctx context.Context, id string) (domain.FridgeResponse, error) {
	fridge, err := s.fridgeRepository.GetFridgeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeResponse{}, domain.ErrFridgeNotFound
		}
		return domain.FridgeResponse{}, err
	}

	return toFridgeResponse(fridge), nil
}

func (s *fridgeService) UpdateFridge(ctx context.Context, id string, req domain.UpdateFridgeRequest) (domain.FridgeResponse, error) {
	fridge, err := s.fridgeRepository.GetFridgeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeResponse{}, domain.ErrFridgeNotFound
		}
		return domain.FridgeResponse{}, err
	}

	fridge.Name = req.Name
	fridge.LocationDesc = req.LocationDesc

	if err := s.fridgeRepository.UpdateFridge(ctx, fridge); err != nil {
		return domain.FridgeResponse{}, err
	}

	return toFridgeResponse(fridge), nil
}

func (s *fridgeService) DeleteFridge(ctx context.Context, id string) error {
	if _, err := s.fridgeRepository.GetFridgeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeNotFound
		}
		return err
	}

	return s.fridgeRepository.DeleteFridge(ctx, id)
}

func (s *fridgeService) ShareFridge(ctx context.Context, fridgeID string, req domain.ShareFridgeRequest) (domain.FridgeUserResponse, error) {
	fridge, err := s.fridgeRepository.GetFridgeByID(ctx, fridgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeUserResponse{}, domain.ErrFridgeNotFound
		}
		return domain.FridgeUserResponse{}, err
	}

	shareUser, err := s.userRepository.GetUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeUserResponse{}, domain.ErrUserNotFound
		}
		return domain.FridgeUserResponse{}, err
	}

	if _, err := s.fridgeRepository.GetFridgeUser(ctx, fridgeID, req.UserID); err == nil {
		return domain.FridgeUserResponse{}, domain.ErrShareAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.FridgeUserResponse{}, err
	}

	mapping := &entities.FridgeUser{
		FridgeID: fridge.ID,
		UserID:   shareUser.ID,
		Role:     req.Role,
	}

	if err := s.fridgeRepository.CreateFridgeUser(ctx, mapping); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.FridgeUserResponse{}, domain.ErrShareAlreadyExists
		}
		return domain.FridgeUserResponse{}, err
	}

	return toFridgeUserResponse(mapping), nil
}

func (s *fridgeService) UnshareFridge(ctx context.Context, fridgeID, userID string) error {
	if err := s.fridgeRepository.DeleteFridgeUser(ctx, fridgeID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeUserNotFound
		}
		return err
	}
	return nil
}

func (s *fridgeService) GetFridgeShares(ctx context.Context, fridgeID string) ([]domain.FridgeUserResponse, error) {
	if _, err := s.fridgeRepository.GetFridgeByID(ctx, fridgeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeNotFound
		}
		return nil, err
	}

	mappings, err := s.fridgeRepository.GetFridgeUsers(ctx, fridgeID)
	if err != nil {
		return nil, err
	}

	var response []domain.FridgeUserResponse
	for _, mapping := range mappings {
		response = append(response, toFridgeUserResponse(mapping))
	}

	return response, nil
}

func toFridgeResponse(fridge *entities.Fridge) domain.FridgeResponse {
	return domain.FridgeResponse{
		ID:           fridge.ID.String(),
		Name:         fridge.Name,
		LocationDesc: fridge.LocationDesc,
		CreatedAt:    fridge.CreatedAt,
	}
}

func toFridgeUserResponse(mapping *entities.FridgeUser) domain.FridgeUserResponse {
	return domain.FridgeUserResponse{
		FridgeID: mapping.FridgeID.String(),
		UserID:   mapping.UserID.String(),
		Role:     mapping.Role,
	}
}
