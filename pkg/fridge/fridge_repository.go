package fridge

import (
	"WasteLess-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		CreateFridge(ctx context.Context, fridge *entities.Fridge) error
		GetFridgeByID(ctx context.Context, id string) (*entities.Fridge, error)
		GetFridges(ctx context.Context, page, limit int) ([]*entities.Fridge, int64, error)
		UpdateFridge(ctx context.Context, fridge *entities.Fridge) error
		DeleteFridge(ctx context.Context, id string) error

		// Sharing mappings
		CreateFridgeUser(ctx context.Context, mapping *entities.FridgeUser) error
		GetFridgeUser(ctx context.Context, fridgeID, userID string) (*entities.FridgeUser, error)
		GetFridgeUsers(ctx context.Context, fridgeID string) ([]*entities.FridgeUser, error)
		DeleteFridgeUser(ctx context.Context, fridgeID, userID string) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) CreateFridge(ctx context.Context, fridge *entities.Fridge) error {
	return r.db.WithContext(ctx).Create(fridge).Error
}

func (r *fridgeRepository) GetFridgeByID(ctx context.Context, id string) (*entities.Fridge, error) {
	var fridge entities.Fridge
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fridge).Error; err != nil {
		return nil, err
	}
	return &fridge, nil
}

func (r *fridgeRepository) GetFridges(ctx context.Context, page, limit int) ([]*entities.Fridge, int64, error) {
	var fridges []*entities.Fridge
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Fridge{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&fridges).Error; err != nil {
		return nil, 0, err
	}

	return fridges, count, nil
}

func (r *fridgeRepository) UpdateFridge(ctx context.Context, fridge *entities.Fridge) error {
	return r.db.WithContext(ctx).Save(fridge).Error
}

func (r *fridgeRepository) DeleteFridge(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Fridge{}).Error
}

func (r *fridgeRepository) CreateFridgeUser(ctx context.Context, mapping *entities.FridgeUser) error {
	return r.db.WithContext(ctx).Create(mapping).Error
}

func (r *fridgeRepository) GetFridgeUser(ctx context.Context, fridgeID, userID string) (*entities.FridgeUser, error) {
	var mapping entities.FridgeUser
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ? AND user_id = ?", fridgeID, userID).
		First(&mapping).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (r *fridgeRepository) GetFridgeUsers(ctx context.Context, fridgeID string) ([]*entities.FridgeUser, error) {
	var mappings []*entities.FridgeUser
	if err := r.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *fridgeRepository) DeleteFridgeUser(ctx context.Context, fridgeID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("fridge_id = ? AND user_id = ?", fridgeID, userID).
		Delete(&entities.FridgeUser{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
