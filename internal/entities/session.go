package entities

import "time"

type Session struct {
	ID        string
	Token     string
	ExpiresAt time.Time
}
