package handlers

import (
	"WasteLess-API/domain"
	"WasteLess-API/internal/api/presenters"
	"WasteLess-API/pkg/notification"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GenerateNotifications(c *fiber.Ctx) error
		SendNotification(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GenerateNotifications(c *fiber.Ctx) error {
	created, err := h.notificationService.GenerateNotifications(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateNotifications, err)
	}

	if created == nil {
		created = []domain.NotificationResponse{}
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"notifications": created,
	}, fiber.StatusOK, domain.MessageSuccessGenerateNotifications)
}

func (h *notificationHandler) SendNotification(c *fiber.Ctx) error {
	noteID := c.Params("id")

	if err := h.notificationService.MarkNotificationSent(c.Context(), noteID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSendNotification, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendNotification)
}
