package outbox

import "time"

type OutboxEventDB struct {
	ID         string     `db:"id"`
	DeliveryID string     `db:"delivery_id"`
	Type       string     `db:"type"`
	Payload    []byte     `db:"payload"`
	CreatedAt  time.Time  `db:"created_at"`
	SentAt     *time.Time `db:"sent_at"`
	Attempts   int        `db:"attempts"`
	LastError  *string    `db:"last_error"`
}
