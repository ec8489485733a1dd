package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFridgeItem    = "fridge item added successfully"
	MessageSuccessGetFridgeItems   = "fridge items retrieved successfully"
	MessageSuccessGetFridgeItem    = "fridge item retrieved successfully"
	MessageSuccessUpdateFridgeItem = "fridge item updated successfully"
	MessageSuccessDeleteFridgeItem = "fridge item deleted successfully"
	MessageSuccessUploadItemImage  = "item image uploaded successfully"
	MessageFailedAddFridgeItem     = "failed to add fridge item"
	MessageFailedGetFridgeItems    = "failed to retrieve fridge items"
	MessageFailedGetFridgeItem     = "failed to retrieve fridge item"
	MessageFailedUpdateFridgeItem  = "failed to update fridge item"
	MessageFailedDeleteFridgeItem  = "failed to delete fridge item"
	MessageFailedUploadItemImage   = "failed to upload item image"

	ErrFridgeItemNotFound = errors.New("fridge item not found")
	ErrQRCodeNotFound     = errors.New("qr code not found")
)

type (
	AddFridgeItemRequest struct {
		AddedBy          string  `json:"added_by" validate:"required,uuid"`
		QRCode           string  `json:"qr_code" validate:"required"`
		FactoryExpiresAt string  `json:"factory_expires_at" validate:"required,datetime=2006-01-02"`
		OpenedAt         *string `json:"opened_at" validate:"omitempty,datetime=2006-01-02"`
		OpenLifeDays     *int    `json:"open_life_days" validate:"omitempty,min=0"`
	}

	// UpdateFridgeItemRequest is a patch: nil fields keep their current value.
	UpdateFridgeItemRequest struct {
		OpenedAt     *string `json:"opened_at" validate:"omitempty,datetime=2006-01-02"`
		OpenLifeDays *int    `json:"open_life_days" validate:"omitempty,min=0"`
	}

	UploadItemImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FridgeItemResponse struct {
		ID               string    `json:"id"`
		FridgeID         string    `json:"fridge_id"`
		AddedBy          string    `json:"added_by"`
		QRCode           string    `json:"qr_code"`
		AddedAt          time.Time `json:"added_at"`
		FactoryExpiresAt string    `json:"factory_expires_at"`
		OpenedAt         *string   `json:"opened_at,omitempty"`
		OpenLifeDays     int       `json:"open_life_days"`
		SpoilDate        string    `json:"spoil_date"`
		ImageURL         string    `json:"image_url,omitempty"`
	}
)
