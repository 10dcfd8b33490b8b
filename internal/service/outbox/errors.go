package outbox

import "errors"

var (
	ErrInvalidBatchSize = errors.New("invalid outbox batch size")
	ErrInvalidRetention = errors.New("invalid outbox retention")
)
