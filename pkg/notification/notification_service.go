package notification

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"WasteLess-API/internal/utils"
	"WasteLess-API/internal/utils/mailing"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NotificationService interface {
		GenerateNotifications(ctx context.Context) ([]domain.NotificationResponse, error)
		GetNotificationsForUser(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error)
		MarkNotificationSent(ctx context.Context, id string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		now                    func() time.Time
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		now:                    time.Now,
	}
}

// GenerateNotifications scans for items spoiling by tomorrow and creates one
// notification per (item, recipient, type) triple that does not already have
// an unsent record. Each insert is a separate durable step: on an insert
// failure the notifications created so far are returned together with the
// error. An insert lost to a concurrently running scan (duplicate key on the
// unsent-triple index) is skipped silently.
func (s *notificationService) GenerateNotifications(ctx context.Context) ([]domain.NotificationResponse, error) {
	now := s.now()
	today := dateOnly(now)
	horizon := today.AddDate(0, 0, 1)

	items, err := s.notificationRepository.GetItemsDueBy(ctx, horizon)
	if err != nil {
		return nil, err
	}

	var created []domain.NotificationResponse
	for _, item := range items {
		notificationType := domain.NotificationTypeAboutToSpoil
		if !dateOnly(item.SpoilDate).After(today) {
			notificationType = domain.NotificationTypeSpoiled
		}

		recipients, err := s.notificationRepository.GetFridgeRecipients(ctx, item.FridgeID.String())
		if err != nil {
			return created, err
		}

		for _, userID := range recipients {
			existing, err := s.notificationRepository.GetUnsentNotification(
				ctx, item.ID.String(), userID.String(), notificationType,
			)
			if err != nil {
				return created, err
			}
			if existing != nil {
				continue
			}

			notification := &entities.Notification{
				ID:         uuid.New(),
				ItemID:     item.ID,
				UserID:     userID,
				Type:       notificationType,
				NotifiedAt: now,
				Sent:       false,
			}

			if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// a concurrent scan inserted the same triple first
					continue
				}
				return created, err
			}

			created = append(created, toNotificationResponse(notification))
		}
	}

	return created, nil
}

func (s *notificationService) GetNotificationsForUser(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, error) {
	notifications, count, err := s.notificationRepository.GetNotificationsForUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	var response []domain.NotificationResponse
	for _, notification := range notifications {
		response = append(response, toNotificationResponse(notification))
	}

	return response, count, nil
}

// MarkNotificationSent flips the one-way sent flag. Marking an already-sent
// notification is a no-op. The alert mail is best-effort and only attempted
// on the first transition; a mail failure does not fail the operation.
func (s *notificationService) MarkNotificationSent(ctx context.Context, id string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.Sent {
		return nil
	}

	if utils.GetConfig("SMTP_HOST") != "" && notification.User != nil {
		if err := mailing.SendMail(
			notification.User.Email,
			alertSubject(notification.Type),
			alertBody(notification),
		); err != nil {
			log.Printf("failed to send spoil alert mail for notification %s: %v", notification.ID, err)
		}
	}

	notification.Sent = true
	return s.notificationRepository.UpdateNotification(ctx, notification)
}

func alertSubject(notificationType string) string {
	if notificationType == domain.NotificationTypeSpoiled {
		return "WasteLess: an item in your fridge has spoiled"
	}
	return "WasteLess: an item in your fridge is about to spoil"
}

func alertBody(notification *entities.Notification) string {
	itemLabel := notification.ItemID.String()
	spoilDate := ""
	if notification.Item != nil {
		itemLabel = notification.Item.QRCode
		spoilDate = notification.Item.SpoilDate.Format("2006-01-02")
	}
	return fmt.Sprintf(
		"<p>Item <b>%s</b> is marked <b>%s</b> (spoil date %s). Check your fridge before it goes to waste.</p>",
		itemLabel, notification.Type, spoilDate,
	)
}

func toNotificationResponse(notification *entities.Notification) domain.NotificationResponse {
	return domain.NotificationResponse{
		ID:         notification.ID.String(),
		ItemID:     notification.ItemID.String(),
		UserID:     notification.UserID.String(),
		Type:       notification.Type,
		NotifiedAt: notification.NotifiedAt,
		Sent:       notification.Sent,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
