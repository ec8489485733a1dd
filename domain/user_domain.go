package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegisterUser     = "user registered successfully"
	MessageSuccessGetUsers         = "users retrieved successfully"
	MessageSuccessGetUser          = "user retrieved successfully"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessDeleteUser       = "user deleted successfully"
	MessageFailedRegisterUser      = "failed to register user"
	MessageFailedGetUsers          = "failed to retrieve users"
	MessageFailedGetUser           = "failed to retrieve user"
	MessageFailedUpdateUser        = "failed to update user"
	MessageFailedDeleteUser        = "failed to delete user"
	MessageFailedEmailAlreadyExist = "email already registered"

	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

type (
	RegisterUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"omitempty,max=100"`
	}

	UpdateUserRequest struct {
		Email string `json:"email" validate:"omitempty,email"`
		Name  string `json:"name" validate:"omitempty,max=100"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
