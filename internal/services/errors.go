package services

import "errors"

// Sentinel errors returned by the services. Handlers translate them
// into HTTP statuses; every one of them is a user-facing failure, not
// a process-level fault.
var (
	ErrNotFound                = errors.New("not found")
	ErrItemUnavailable         = errors.New("menu item is not available")
	ErrCrossRestaurantConflict = errors.New("cart already holds items from another restaurant")
	ErrLineNotFound            = errors.New("cart line not found")
	ErrEmptyCart               = errors.New("cart is empty")
	ErrInvalidTransition       = errors.New("invalid order status transition")
	ErrForbidden               = errors.New("insufficient permissions")
	ErrInvalidQuantity         = errors.New("quantity must be at least 1")
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrDuplicateUser           = errors.New("username or email already registered")
)
