package handlers

import (
	"WasteLess-API/domain"
	"WasteLess-API/internal/api/presenters"
	"WasteLess-API/pkg/notification"
	"WasteLess-API/pkg/user"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		GetUserNotifications(c *fiber.Ctx) error
	}

	userHandler struct {
		userService         user.UserService
		notificationService notification.NotificationService
		validator           *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, notificationService notification.NotificationService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService:         userService,
		notificationService: notificationService,
		validator:           validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedEmailAlreadyExist, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegisterUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegisterUser)
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	users, count, err := h.userService.GetUsers(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"users":      users,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	res, err := h.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetUser, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	req := new(domain.UpdateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	res, err := h.userService.UpdateUser(c.Context(), userID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateUser, err)
		}
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedEmailAlreadyExist, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	userID := c.Params("id")

	if err := h.userService.DeleteUser(c.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteUser, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *userHandler) GetUserNotifications(c *fiber.Ctx) error {
	userID := c.Params("id")
	page, limit := parsePagination(c)

	notifications, count, err := h.notificationService.GetNotificationsForUser(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"notifications": notifications,
		"pagination":    paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func parsePagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}

func paginationMap(page, limit int, count int64) fiber.Map {
	return fiber.Map{
		"page":        page,
		"limit":       limit,
		"total":       count,
		"total_pages": (count + int64(limit) - 1) / int64(limit),
	}
}
