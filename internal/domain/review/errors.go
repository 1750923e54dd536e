package review

import "errors"

// Review domain errors
var (
	ErrReviewNotFound = errors.New("performance review not found")
)
