package delivery_id

import (
	"fmt"

	"github.com/google/uuid"
)

// IDFactory выдает упорядоченные по времени UUID v7 для доставок, событий и сессий.
type IDFactory struct{}

func New() *IDFactory {
	return &IDFactory{}
}

func (f *IDFactory) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}
	return id.String(), nil
}

// IsValid true для UUID в каноническом виде.
func IsValid(id string) bool {
	parsed, err := uuid.Parse(id)
	return err == nil && parsed.String() == id
}
