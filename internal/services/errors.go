package services

import "errors"

// Sentinel errors surfaced to handlers, which map them to HTTP statuses.
var (
	// ErrUnauthenticated is returned when order submission is attempted
	// without a resolved user identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrEmptyCart is returned when order submission is attempted with no
	// cart lines. Raised before any persistence call.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidPrice means a catalog price string failed to parse as a
	// decimal. This is a data-integrity failure in the catalog and is never
	// silently coerced to zero.
	ErrInvalidPrice = errors.New("menu item has an invalid price")

	// ErrInvalidPaymentMethod is returned for payment methods other than
	// cod and online.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrNotOrderOwner is returned when a user requests an order that
	// belongs to someone else.
	ErrNotOrderOwner = errors.New("order does not belong to user")

	// ErrInvalidStatusTransition is returned for order status updates that
	// violate the pending -> processing -> completed | cancelled machine.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)
