package handlers

import (
	"WasteLess-API/domain"
	"WasteLess-API/internal/api/presenters"
	"WasteLess-API/pkg/item"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ItemHandler interface {
		AddFridgeItem(c *fiber.Ctx) error
		GetFridgeItems(c *fiber.Ctx) error
		GetFridgeItem(c *fiber.Ctx) error
		UpdateFridgeItem(c *fiber.Ctx) error
		DeleteFridgeItem(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
	}

	itemHandler struct {
		itemService item.ItemService
		validator   *validator.Validate
	}
)

func NewItemHandler(itemService item.ItemService, validator *validator.Validate) ItemHandler {
	return &itemHandler{
		itemService: itemService,
		validator:   validator,
	}
}

func (h *itemHandler) AddFridgeItem(c *fiber.Ctx) error {
	fridgeID := c.Params("id")
	req := new(domain.AddFridgeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFridgeItem, err)
	}

	res, err := h.itemService.AddFridgeItem(c.Context(), fridgeID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) || errors.Is(err, domain.ErrQRCodeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddFridgeItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFridgeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFridgeItem)
}

func (h *itemHandler) GetFridgeItems(c *fiber.Ctx) error {
	fridgeID := c.Params("id")
	page, limit := parsePagination(c)

	items, count, err := h.itemService.GetFridgeItems(c.Context(), fridgeID, page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFridgeItems, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items":      items,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetFridgeItems)
}

func (h *itemHandler) GetFridgeItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	res, err := h.itemService.GetFridgeItemByID(c.Context(), itemID)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetFridgeItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFridgeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFridgeItem)
}

func (h *itemHandler) UpdateFridgeItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UpdateFridgeItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridgeItem, err)
	}

	res, err := h.itemService.UpdateFridgeItem(c.Context(), itemID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateFridgeItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFridgeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateFridgeItem)
}

func (h *itemHandler) DeleteFridgeItem(c *fiber.Ctx) error {
	itemID := c.Params("id")

	if err := h.itemService.DeleteFridgeItem(c.Context(), itemID); err != nil {
		if errors.Is(err, domain.ErrFridgeItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFridgeItem, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFridgeItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFridgeItem)
}

func (h *itemHandler) UploadItemImage(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.UploadItemImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	res, err := h.itemService.UploadItemImage(c.Context(), itemID, *req)
	if err != nil {
		if errors.Is(err, domain.ErrFridgeItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadItemImage, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadItemImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadItemImage)
}
