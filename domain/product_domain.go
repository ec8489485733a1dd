package domain

import (
	"errors"
)

var (
	MessageSuccessCreateProduct = "product created successfully"
	MessageSuccessGetProducts   = "products retrieved successfully"
	MessageSuccessGetProduct    = "product retrieved successfully"
	MessageSuccessCreateQRCode  = "qr code registered successfully"
	MessageSuccessGetQRCode     = "qr code retrieved successfully"
	MessageFailedCreateProduct  = "failed to create product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedGetProduct     = "failed to retrieve product"
	MessageFailedCreateQRCode   = "failed to register qr code"
	MessageFailedGetQRCode      = "failed to retrieve qr code"

	ErrProductNotFound = errors.New("product not found")
)

type (
	CreateProductRequest struct {
		Name             string `json:"name" validate:"required,max=255"`
		Category         string `json:"category" validate:"omitempty,max=100"`
		DefaultShelfLife int    `json:"default_shelf_life" validate:"required,min=0"`
		DefaultOpenLife  int    `json:"default_open_life" validate:"omitempty,min=0"`
	}

	ProductResponse struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Category         string `json:"category,omitempty"`
		DefaultShelfLife int    `json:"default_shelf_life"`
		DefaultOpenLife  int    `json:"default_open_life"`
	}

	CreateQRCodeRequest struct {
		Code      string `json:"code" validate:"required,max=100"`
		ProductID string `json:"product_id" validate:"required,uuid"`
		BatchInfo string `json:"batch_info" validate:"omitempty,max=255"`
		InfoURL   string `json:"info_url" validate:"omitempty,url"`
	}

	QRCodeResponse struct {
		Code      string `json:"code"`
		ProductID string `json:"product_id"`
		BatchInfo string `json:"batch_info,omitempty"`
		InfoURL   string `json:"info_url,omitempty"`
	}
)
