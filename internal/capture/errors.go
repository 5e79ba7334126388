package capture

import "errors"

// Domain-specific errors for the capture package.
var (
	ErrEmptyText        = errors.New("capture text is empty")
	ErrNothingExtracted = errors.New("no tasks extracted from input")
	ErrExtraction       = errors.New("extraction failed")
)
