package domain

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotCreated = errors.New("failed to create order")
	ErrStatusRequired  = errors.New("status is required")
)
