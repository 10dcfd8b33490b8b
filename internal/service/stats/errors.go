package stats

import "errors"

var (
	ErrInvalidEvent = errors.New("invalid delivery event")
	ErrInvalidRange = errors.New("invalid stats date range")
)
