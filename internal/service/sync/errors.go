package sync

import "errors"

var (
	ErrEmptyBatch      = errors.New("sync batch is empty")
	ErrBatchTooLarge   = errors.New("sync batch is too large")
	ErrInvalidEnvelope = errors.New("invalid sync envelope")
)
