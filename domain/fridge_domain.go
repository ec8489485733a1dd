package domain

import (
	"errors"
	"time"
)

const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

var (
	MessageSuccessCreateFridge    = "fridge created successfully"
	MessageSuccessGetFridges      = "fridges retrieved successfully"
	MessageSuccessGetFridge       = "fridge retrieved successfully"
	MessageSuccessUpdateFridge    = "fridge updated successfully"
	MessageSuccessDeleteFridge    = "fridge deleted successfully"
	MessageSuccessShareFridge     = "fridge shared successfully"
	MessageSuccessUnshareFridge   = "fridge access revoked successfully"
	MessageSuccessGetFridgeShares = "fridge shares retrieved successfully"
	MessageFailedCreateFridge     = "failed to create fridge"
	MessageFailedGetFridges       = "failed to retrieve fridges"
	MessageFailedGetFridge        = "failed to retrieve fridge"
	MessageFailedUpdateFridge     = "failed to update fridge"
	MessageFailedDeleteFridge     = "failed to delete fridge"
	MessageFailedShareFridge      = "failed to share fridge"
	MessageFailedUnshareFridge    = "failed to revoke fridge access"
	MessageFailedGetFridgeShares  = "failed to retrieve fridge shares"

	ErrFridgeNotFound     = errors.New("fridge not found")
	ErrFridgeUserNotFound = errors.New("fridge-user mapping not found")
	ErrShareAlreadyExists = errors.New("user already has access to this fridge")
)

type (
	CreateFridgeRequest struct {
		Name         string `json:"name" validate:"required,max=100"`
		LocationDesc string `json:"location_desc" validate:"omitempty"`
	}

	UpdateFridgeRequest struct {
		Name         string `json:"name" validate:"required,max=100"`
		LocationDesc string `json:"location_desc" validate:"omitempty"`
	}

	FridgeResponse struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		LocationDesc string    `json:"location_desc,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
	}

	ShareFridgeRequest struct {
		UserID string `json:"user_id" validate:"required,uuid"`
		Role   string `json:"role" validate:"required,oneof=owner editor viewer"`
	}

	FridgeUserResponse struct {
		FridgeID string `json:"fridge_id"`
		UserID   string `json:"user_id"`
		Role     string `json:"role"`
	}
)
