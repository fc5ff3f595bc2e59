package domain

import "errors"

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrInvalidIndex      = errors.New("product index out of range")
	ErrProductNotFound   = errors.New("product not found")
)
