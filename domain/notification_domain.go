package domain

import (
	"errors"
	"time"
)

const (
	NotificationTypeAboutToSpoil = "about_to_spoil"
	NotificationTypeSpoiled      = "spoiled"
)

var (
	MessageSuccessGetNotifications      = "notifications retrieved successfully"
	MessageSuccessGenerateNotifications = "notifications generated successfully"
	MessageSuccessSendNotification      = "notification marked as sent"
	MessageFailedGetNotifications       = "failed to retrieve notifications"
	MessageFailedGenerateNotifications  = "failed to generate notifications"
	MessageFailedSendNotification       = "failed to mark notification as sent"

	ErrNotificationNotFound = errors.New("notification not found")
)

type (
	NotificationResponse struct {
		ID         string    `json:"id"`
		ItemID     string    `json:"item_id"`
		UserID     string    `json:"user_id"`
		Type       string    `json:"type"`
		NotifiedAt time.Time `json:"notified_at"`
		Sent       bool      `json:"sent"`
	}
)
