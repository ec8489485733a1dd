package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process body request"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseUUID   = errors.New("failed to parse UUID")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
