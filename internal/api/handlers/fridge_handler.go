package handlers

import (
	"WasteLess-API/domain"
	"WasteLess-API/internal/api/presenters"
	"WasteLess-API/pkg/fridge"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		CreateFridge(c *fiber.Ctx) error
		GetFridges(c *fiber.Ctx) error
		GetFridge(c *fiber.Ctx) error
		UpdateFridge(c *fiber.Ctx) error
		DeleteFridge(c *fiber.Ctx) error
		ShareFridge(c *fiber.Ctx) error
		UnshareFridge(c *fiber.Ctx) error
		GetFridgeShares(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) CreateFridge(c *fiber.Ctx) error {
	req := new(domain.CreateFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFridge, err)
	}

	res, err := h.fridgeService.CreateFridge(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFridge)
}

func (h *fridgeHandler) GetFridges(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	fridges, count, err := h.fridgeService.GetFridges(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridges, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"fridges":    fridges,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetFridges)
}

func (h *fridgeHandler) GetFridge(c *fiber.Ctx) error {
	fridgeID := c.Params("id")

	res, err := h.fridgeService.GetFridgeByID(c.Context(), fridgeID)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFridge)
}

func (h *fridgeHandler) UpdateFridge(c *fiber.Ctx) error {
	fridgeID := c.Params("id")
	req := new(domain.UpdateFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridge, err)
	}

	res, err := h.fridgeService.UpdateFridge(c.Context(), fridgeID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFridge)
}

func (h *fridgeHandler) DeleteFridge(c *fiber.Ctx) error {
	fridgeID := c.Params("id")

	if err := h.fridgeService.DeleteFridge(c.Context(), fridgeID); err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFridge, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFridge)
}

func (h *fridgeHandler) ShareFridge(c *fiber.Ctx) error {
	fridgeID := c.Params("id")
	req := new(domain.ShareFridgeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareFridge, err)
	}

	res, err := h.fridgeService.ShareFridge(c.Context(), fridgeID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) || errors.Is(err, domain.ErrUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedShareFridge, err)
		}
		if errors.Is(err, domain.ErrShareAlreadyExists) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedShareFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareFridge, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessShareFridge)
}

func (h *fridgeHandler) UnshareFridge(c *fiber.Ctx) error {
	fridgeID := c.Params("id")
	userID := c.Params("user_id")

	if err := h.fridgeService.UnshareFridge(c.Context(), fridgeID, userID); err != nil {
		if errors.Is(err, domain.ErrFridgeUserNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUnshareFridge, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUnshareFridge, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUnshareFridge)
}

func (h *fridgeHandler) GetFridgeShares(c *fiber.Ctx) error {
	fridgeID := c.Params("id")

	res, err := h.fridgeService.GetFridgeShares(c.Context(), fridgeID)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFridgeShares, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeShares, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"shares": res,
	}, fiber.StatusOK, domain.MessageSuccessGetFridgeShares)
}
