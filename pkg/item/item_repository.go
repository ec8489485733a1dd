package item

import (
	"WasteLess-API/entities"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpoilFieldsPatch is a partial update of the fields the spoil date derives
// from. Nil fields keep the item's current value.
type SpoilFieldsPatch struct {
	OpenedAt     *time.Time
	OpenLifeDays *int
}

type (
	ItemRepository interface {
		CreateFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error)
		GetFridgeItems(ctx context.Context, fridgeID string, page, limit int) ([]*entities.FridgeItem, int64, error)
		UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		UpdateFridgeItemSpoilFields(ctx context.Context, id string, patch SpoilFieldsPatch) (*entities.FridgeItem, error)
		DeleteFridgeItem(ctx context.Context, id string) error
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) CreateFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetFridgeItems(ctx context.Context, fridgeID string, page, limit int) ([]*entities.FridgeItem, int64, error) {
	var items []*entities.FridgeItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("fridge_id = ?", fridgeID)

	if err := query.Model(&entities.FridgeItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("spoil_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *itemRepository) UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// UpdateFridgeItemSpoilFields merges the patch into the item's current row and
// recomputes the spoil date in one transaction. The row is locked for the
// duration so a concurrent patch cannot base the recompute on stale
// opened_at/open_life_days values.
func (r *itemRepository) UpdateFridgeItemSpoilFields(ctx context.Context, id string, patch SpoilFieldsPatch) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&item).Error; err != nil {
			return err
		}

		if patch.OpenedAt != nil {
			item.OpenedAt = patch.OpenedAt
		}
		if patch.OpenLifeDays != nil {
			item.OpenLifeDays = *patch.OpenLifeDays
		}
		item.SpoilDate = ComputeSpoilDate(item.OpenedAt, item.OpenLifeDays, item.FactoryExpiresAt)

		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) DeleteFridgeItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FridgeItem{}).Error
}
