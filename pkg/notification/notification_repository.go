package notification

import (
	"WasteLess-API/entities"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		GetItemsDueBy(ctx context.Context, due time.Time) ([]*entities.FridgeItem, error)
		GetFridgeRecipients(ctx context.Context, fridgeID string) ([]uuid.UUID, error)
		GetUnsentNotification(ctx context.Context, itemID, userID, notificationType string) (*entities.Notification, error)
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error)
		GetNotificationsForUser(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error)
		UpdateNotification(ctx context.Context, notification *entities.Notification) error
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetItemsDueBy(ctx context.Context, due time.Time) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("spoil_date <= ?", due).
		Order("spoil_date ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *notificationRepository) GetFridgeRecipients(ctx context.Context, fridgeID string) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&entities.FridgeUser{}).
		Where("fridge_id = ?", fridgeID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

// GetUnsentNotification returns nil without error when no unsent notification
// exists for the (item, user, type) triple.
func (r *notificationRepository) GetUnsentNotification(ctx context.Context, itemID, userID, notificationType string) (*entities.Notification, error) {
	var notification entities.Notification
	err := r.db.WithContext(ctx).
		Where("item_id = ? AND user_id = ? AND type = ? AND sent = ?",
			itemID, userID, notificationType, false).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("User").
		Where("id = ?", id).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) GetNotificationsForUser(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	var notifications []*entities.Notification
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Notification{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("notified_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *notificationRepository) UpdateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}
