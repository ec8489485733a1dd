package item

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"WasteLess-API/internal/utils/storage"
	"WasteLess-API/pkg/fridge"
	"WasteLess-API/pkg/product"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// ComputeSpoilDate derives the date after which an item is considered
// spoiled: opened items spoil openLifeDays calendar days after opening,
// unopened items spoil on their factory expiry date.
func ComputeSpoilDate(openedAt *time.Time, openLifeDays int, factoryExpiresAt time.Time) time.Time {
	if openedAt != nil {
		return openedAt.AddDate(0, 0, openLifeDays)
	}
	return factoryExpiresAt
}

type (
	ItemService interface {
		AddFridgeItem(ctx context.Context, fridgeID string, req domain.AddFridgeItemRequest) (domain.FridgeItemResponse, error)
		GetFridgeItems(ctx context.Context, fridgeID string, page, limit int) ([]domain.FridgeItemResponse, int64, error)
		GetFridgeItemByID(ctx context.Context, id string) (domain.FridgeItemResponse, error)
		UpdateFridgeItem(ctx context.Context, id string, req domain.UpdateFridgeItemRequest) (domain.FridgeItemResponse, error)
		DeleteFridgeItem(ctx context.Context, id string) error
		UploadItemImage(ctx context.Context, id string, req domain.UploadItemImageRequest) (domain.FridgeItemResponse, error)
	}

	itemService struct {
		itemRepository    ItemRepository
		fridgeRepository  fridge.FridgeRepository
		productRepository product.ProductRepository
		s3                storage.AwsS3
	}
)

func NewItemService(
	itemRepository ItemRepository,
	fridgeRepository fridge.FridgeRepository,
	productRepository product.ProductRepository,
	s3 storage.AwsS3,
) ItemService {
	return &itemService{
		itemRepository:    itemRepository,
		fridgeRepository:  fridgeRepository,
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *itemService) AddFridgeItem(ctx context.Context, fridgeID string, req domain.AddFridgeItemRequest) (domain.FridgeItemResponse, error) {
	fridgeEntity, err := s.fridgeRepository.GetFridgeByID(ctx, fridgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeItemResponse{}, domain.ErrFridgeNotFound
		}
		return domain.FridgeItemResponse{}, err
	}

	qr, err := s.productRepository.GetQRCodeByCode(ctx, req.QRCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeItemResponse{}, domain.ErrQRCodeNotFound
		}
		return domain.FridgeItemResponse{}, err
	}

	addedBy, err := uuid.Parse(req.AddedBy)
	if err != nil {
		return domain.FridgeItemResponse{}, domain.ErrParseUUID
	}

	factoryExpiresAt, err := time.Parse(dateLayout, req.FactoryExpiresAt)
	if err != nil {
		return domain.FridgeItemResponse{}, domain.ErrInvalidDate
	}

	var openedAt *time.Time
	if req.OpenedAt != nil {
		parsed, err := time.Parse(dateLayout, *req.OpenedAt)
		if err != nil {
			return domain.FridgeItemResponse{}, domain.ErrInvalidDate
		}
		openedAt = &parsed
	}

	// Open life falls back to the scanned product's default when the
	// request leaves it out.
	openLifeDays := 0
	if req.OpenLifeDays != nil {
		openLifeDays = *req.OpenLifeDays
	} else if qr.Product != nil {
		openLifeDays = qr.Product.DefaultOpenLife
	}

	item := &entities.FridgeItem{
		ID:               uuid.New(),
		FridgeID:         fridgeEntity.ID,
		AddedBy:          addedBy,
		QRCode:           qr.Code,
		AddedAt:          time.Now().UTC(),
		FactoryExpiresAt: factoryExpiresAt,
		OpenedAt:         openedAt,
		OpenLifeDays:     openLifeDays,
		SpoilDate:        ComputeSpoilDate(openedAt, openLifeDays, factoryExpiresAt),
	}

	if err := s.itemRepository.CreateFridgeItem(ctx, item); err != nil {
		return domain.FridgeItemResponse{}, err
	}

	return toFridgeItemResponse(item), nil
}

func (s *itemService) GetFridgeItems(ctx context.Context, fridgeID string, page, limit int) ([]domain.FridgeItemResponse, int64, error) {
	if _, err := s.fridgeRepository.GetFridgeByID(ctx, fridgeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrFridgeNotFound
		}
		return nil, 0, err
	}

	items, count, err := s.itemRepository.GetFridgeItems(ctx, fridgeID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.FridgeItemResponse
	for _, item := range items {
		response = append(response, toFridgeItemResponse(item))
	}

	return response, count, nil
}

func (s *itemService) GetFridgeItemByID(ctx context.Context, id string) (domain.FridgeItemResponse, error) {
	item, err := s.itemRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeItemResponse{}, domain.ErrFridgeItemNotFound
		}
		return domain.FridgeItemResponse{}, err
	}

	return toFridgeItemResponse(item), nil
}

func (s *itemService) UpdateFridgeItem(ctx context.Context, id string, req domain.UpdateFridgeItemRequest) (domain.FridgeItemResponse, error) {
	var patch SpoilFieldsPatch

	if req.OpenedAt != nil {
		parsed, err := time.Parse(dateLayout, *req.OpenedAt)
		if err != nil {
			return domain.FridgeItemResponse{}, domain.ErrInvalidDate
		}
		patch.OpenedAt = &parsed
	}
	patch.OpenLifeDays = req.OpenLifeDays

	item, err := s.itemRepository.UpdateFridgeItemSpoilFields(ctx, id, patch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeItemResponse{}, domain.ErrFridgeItemNotFound
		}
		return domain.FridgeItemResponse{}, err
	}

	return toFridgeItemResponse(item), nil
}

func (s *itemService) DeleteFridgeItem(ctx context.Context, id string) error {
	item, err := s.itemRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeItemNotFound
		}
		return err
	}

	if item.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.itemRepository.DeleteFridgeItem(ctx, id)
}

func (s *itemService) UploadItemImage(ctx context.Context, id string, req domain.UploadItemImageRequest) (domain.FridgeItemResponse, error) {
	item, err := s.itemRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FridgeItemResponse{}, domain.ErrFridgeItemNotFound
		}
		return domain.FridgeItemResponse{}, err
	}

	fileName := fmt.Sprintf("fridge-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "fridge-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.FridgeItemResponse{}, uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	if err := s.itemRepository.UpdateFridgeItem(ctx, item); err != nil {
		return domain.FridgeItemResponse{}, err
	}

	return toFridgeItemResponse(item), nil
}

func toFridgeItemResponse(item *entities.FridgeItem) domain.FridgeItemResponse {
	var openedAt *string
	if item.OpenedAt != nil {
		formatted := item.OpenedAt.Format(dateLayout)
		openedAt = &formatted
	}

	return domain.FridgeItemResponse{
		ID:               item.ID.String(),
		FridgeID:         item.FridgeID.String(),
		AddedBy:          item.AddedBy.String(),
		QRCode:           item.QRCode,
		AddedAt:          item.AddedAt,
		FactoryExpiresAt: item.FactoryExpiresAt.Format(dateLayout),
		OpenedAt:         openedAt,
		OpenLifeDays:     item.OpenLifeDays,
		SpoilDate:        item.SpoilDate.Format(dateLayout),
		ImageURL:         item.ImageURL,
	}
}
