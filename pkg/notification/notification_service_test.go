package notification

import (
	"WasteLess-API/domain"
	"WasteLess-API/entities"
	"context"
	"errors"
	"time"

	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	items         []*entities.FridgeItem
	recipients    map[string][]uuid.UUID
	notifications []*entities.Notification

	creates   int
	createErr error
	failAfter int // creates beyond this count return createErr
}

func (f *fakeNotificationRepository) GetItemsDueBy(_ context.Context, due time.Time) ([]*entities.FridgeItem, error) {
	var result []*entities.FridgeItem
	for _, item := range f.items {
		if !item.SpoilDate.After(due) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeNotificationRepository) GetFridgeRecipients(_ context.Context, fridgeID string) ([]uuid.UUID, error) {
	return f.recipients[fridgeID], nil
}

func (f *fakeNotificationRepository) GetUnsentNotification(_ context.Context, itemID, userID, notificationType string) (*entities.Notification, error) {
	for _, n := range f.notifications {
		if n.ItemID.String() == itemID && n.UserID.String() == userID && n.Type == notificationType && !n.Sent {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, notification *entities.Notification) error {
	f.creates++
	if f.createErr != nil && f.creates > f.failAfter {
		return f.createErr
	}
	f.notifications = append(f.notifications, notification)
	return nil
}

func (f *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string) (*entities.Notification, error) {
	for _, n := range f.notifications {
		if n.ID.String() == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) GetNotificationsForUser(_ context.Context, userID string, _, _ int) ([]*entities.Notification, int64, error) {
	var result []*entities.Notification
	for _, n := range f.notifications {
		if n.UserID.String() == userID {
			result = append(result, n)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeNotificationRepository) UpdateNotification(_ context.Context, notification *entities.Notification) error {
	for i, n := range f.notifications {
		if n.ID == notification.ID {
			f.notifications[i] = notification
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func newTestService(repo NotificationRepository, now time.Time) *notificationService {
	return &notificationService{
		notificationRepository: repo,
		now:                    func() time.Time { return now },
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func testItem(fridgeID uuid.UUID, spoilDate time.Time) *entities.FridgeItem {
	return &entities.FridgeItem{
		ID:        uuid.New(),
		FridgeID:  fridgeID,
		SpoilDate: spoilDate,
	}
}

func TestGenerateNotificationsTypeByDate(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	spoiledItem := testItem(fridgeID, date(2025, 1, 9))
	dueTomorrow := testItem(fridgeID, date(2025, 1, 10))
	farAway := testItem(fridgeID, date(2025, 1, 11))

	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{spoiledItem, dueTomorrow, farAway},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
	}
	service := newTestService(repo, time.Date(2025, 1, 9, 15, 30, 0, 0, time.UTC))

	created, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, created, 2)

	byItem := map[string]string{}
	for _, n := range created {
		byItem[n.ItemID] = n.Type
	}
	assert.Equal(t, domain.NotificationTypeSpoiled, byItem[spoiledItem.ID.String()])
	assert.Equal(t, domain.NotificationTypeAboutToSpoil, byItem[dueTomorrow.ID.String()])
	assert.NotContains(t, byItem, farAway.ID.String())
}

func TestGenerateNotificationsMarksOverdueAsSpoiled(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	// opened 2025-01-01 with 3 open-life days, long past by the scan date
	overdue := testItem(fridgeID, date(2025, 1, 4))

	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{overdue},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
	}
	service := newTestService(repo, time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC))

	created, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, domain.NotificationTypeSpoiled, created[0].Type)
}

func TestGenerateNotificationsFanOutToAllMembers(t *testing.T) {
	fridgeID := uuid.New()
	owner := uuid.New()
	viewer := uuid.New()

	item := testItem(fridgeID, date(2025, 1, 10))

	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{item},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {owner, viewer}},
	}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	created, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, created, 2)

	users := map[string]bool{}
	for _, n := range created {
		users[n.UserID] = true
	}
	assert.True(t, users[owner.String()])
	assert.True(t, users[viewer.String()])
}

func TestGenerateNotificationsSecondRunCreatesNothing(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{testItem(fridgeID, date(2025, 1, 10))},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
	}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	first, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestGenerateNotificationsRegeneratesAfterSent(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{testItem(fridgeID, date(2025, 1, 10))},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
	}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	first, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	require.NoError(t, service.MarkNotificationSent(context.Background(), first[0].ID))

	// the unsent dedup no longer applies once the first alert went out
	second, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}

func TestGenerateNotificationsEscalatesToSpoiled(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	item := testItem(fridgeID, date(2025, 1, 10))
	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{item},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
	}

	early := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))
	first, err := early.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, domain.NotificationTypeAboutToSpoil, first[0].Type)

	// next day the same item crosses into spoiled; the pending
	// about_to_spoil record does not suppress the escalation
	late := newTestService(repo, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC))
	second, err := late.GenerateNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, domain.NotificationTypeSpoiled, second[0].Type)
}

func TestGenerateNotificationsPartialSuccess(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	repo := &fakeNotificationRepository{
		items: []*entities.FridgeItem{
			testItem(fridgeID, date(2025, 1, 9)),
			testItem(fridgeID, date(2025, 1, 10)),
		},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
		createErr:  errors.New("connection reset"),
		failAfter:  1,
	}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	created, err := service.GenerateNotifications(context.Background())
	require.Error(t, err)
	assert.Len(t, created, 1)
}

func TestGenerateNotificationsSkipsConcurrentDuplicate(t *testing.T) {
	fridgeID := uuid.New()
	userID := uuid.New()

	repo := &fakeNotificationRepository{
		items:      []*entities.FridgeItem{testItem(fridgeID, date(2025, 1, 10))},
		recipients: map[string][]uuid.UUID{fridgeID.String(): {userID}},
		createErr:  gorm.ErrDuplicatedKey,
	}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	created, err := service.GenerateNotifications(context.Background())
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestMarkNotificationSent(t *testing.T) {
	userID := uuid.New()
	notification := &entities.Notification{
		ID:         uuid.New(),
		ItemID:     uuid.New(),
		UserID:     userID,
		Type:       domain.NotificationTypeAboutToSpoil,
		NotifiedAt: date(2025, 1, 9),
	}
	repo := &fakeNotificationRepository{notifications: []*entities.Notification{notification}}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	require.NoError(t, service.MarkNotificationSent(context.Background(), notification.ID.String()))
	assert.True(t, repo.notifications[0].Sent)

	// already sent is a no-op
	require.NoError(t, service.MarkNotificationSent(context.Background(), notification.ID.String()))
	assert.True(t, repo.notifications[0].Sent)
}

func TestMarkNotificationSentNotFound(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := newTestService(repo, time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))

	err := service.MarkNotificationSent(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}
