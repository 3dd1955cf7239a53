package services

import "errors"

// Error taxonomy shared across services. All are local, recoverable
// conditions: a rejected operation leaves prior state fully intact.
var (
	// ErrValidation covers malformed input: empty names, non-positive
	// amounts, unknown enum values, missing variance reasons.
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientStock rejects a transfer exceeding the source tier's
	// quantity. The transfer is aborted with no partial debit or credit.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrIllegalTransition rejects an order status change the state machine
	// does not allow. The order is left unchanged.
	ErrIllegalTransition = errors.New("illegal order status transition")

	// ErrAuthorizationDenied is returned by the manager gate on a wrong PIN
	// or a missing reason. The gate stays open for retry.
	ErrAuthorizationDenied = errors.New("manager authorization denied")

	// ErrEmptyCart rejects submitting a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrItemNotFound marks a catalog or inventory lookup miss.
	ErrItemNotFound = errors.New("item not found or not available")

	// ErrOrderNotFound marks an order lookup miss.
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
