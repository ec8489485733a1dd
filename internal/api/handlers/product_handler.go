package handlers

import (
	"WasteLess-API/domain"
	"WasteLess-API/internal/api/presenters"
	"WasteLess-API/pkg/product"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ProductHandler interface {
		CreateProduct(c *fiber.Ctx) error
		GetProducts(c *fiber.Ctx) error
		GetProduct(c *fiber.Ctx) error
		CreateQRCode(c *fiber.Ctx) error
		GetQRCode(c *fiber.Ctx) error
	}

	productHandler struct {
		productService product.ProductService
		validator      *validator.Validate
	}
)

func NewProductHandler(productService product.ProductService, validator *validator.Validate) ProductHandler {
	return &productHandler{
		productService: productService,
		validator:      validator,
	}
}

func (h *productHandler) CreateProduct(c *fiber.Ctx) error {
	req := new(domain.CreateProductRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	res, err := h.productService.CreateProduct(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProduct)
}

func (h *productHandler) GetProducts(c *fiber.Ctx) error {
	page, limit := parsePagination(c)

	products, count, err := h.productService.GetProducts(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProducts, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"products":   products,
		"pagination": paginationMap(page, limit, count),
	}, fiber.StatusOK, domain.MessageSuccessGetProducts)
}

func (h *productHandler) GetProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	res, err := h.productService.GetProductByID(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetProduct, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProduct, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProduct)
}

func (h *productHandler) CreateQRCode(c *fiber.Ctx) error {
	req := new(domain.CreateQRCodeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateQRCode, err)
	}

	res, err := h.productService.CreateQRCode(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateQRCode, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateQRCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateQRCode)
}

func (h *productHandler) GetQRCode(c *fiber.Ctx) error {
	code := c.Params("code")

	res, err := h.productService.GetQRCodeByCode(c.Context(), code)
	if err != nil {
		if errors.Is(err, domain.ErrQRCodeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetQRCode, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetQRCode, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetQRCode)
}
