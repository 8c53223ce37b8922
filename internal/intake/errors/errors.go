package errors

import "errors"

var (
	ErrNotFound = errors.New("submission not found")

	ErrInvalidID = errors.New("invalid submission ID format")

	ErrArchiveDisabled = errors.New("submission archive is disabled")
)
