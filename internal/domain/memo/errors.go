package memo

import "errors"

// Memo domain errors
var (
	ErrMemoNotFound = errors.New("memo not found")
)
