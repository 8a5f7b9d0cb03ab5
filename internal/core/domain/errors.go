package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrAdminAlreadyExists = errors.New("admin user already exists")
	ErrUserInactive       = errors.New("user account is inactive")
)

// Catalog errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrSKUAlreadyUsed  = errors.New("sku already in use")
)

// Order errors
var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderHasNoItems    = errors.New("order has no line items")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrOrderNotCancelable = errors.New("order can no longer be canceled")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrSessionRevoked  = errors.New("session revoked")
)
