package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrLockNotFound    = errors.New("lock not found or expired")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrAlreadyLocked        = errors.New("item is held by another user")
	ErrUnauthorized         = errors.New("lock belongs to another user")
	ErrMaxExtensionsReached = errors.New("maximum lock extensions reached")
)

var (
	ErrPricingUnavailable = errors.New("pricing unavailable")
	ErrPersistenceFailure = errors.New("persistence failure")
)

var (
	ErrValidation = errors.New("validation error")
)
