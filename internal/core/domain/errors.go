package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidInput       = errors.New("invalid input")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already in use")

	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")

	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")

	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not in cart")
	ErrCartEmpty        = errors.New("cart is empty")

	ErrOrderNotFound = errors.New("order not found")
)
