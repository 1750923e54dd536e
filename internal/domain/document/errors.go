package document

import "errors"

// Document domain errors
var (
	ErrDocumentNotFound = errors.New("document not found")
)
