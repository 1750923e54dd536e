package inventory

import "errors"

// Inventory domain errors
var (
	ErrTransactionNotFound = errors.New("inventory transaction not found")
)
