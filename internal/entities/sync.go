package entities

import (
	"encoding/json"
	"time"
)

type EnvelopeType string

const (
	EnvelopeDeliveryCreated EnvelopeType = "delivery_created"
	EnvelopeActionLogged    EnvelopeType = "action_logged"
)

// SyncEnvelope элемент офлайн очереди водителя: {type, timestamp, data}.
type SyncEnvelope struct {
	ID        string
	Type      EnvelopeType
	Timestamp time.Time
	Data      json.RawMessage
}

type SyncStatus string

const (
	SyncApplied   SyncStatus = "applied"
	SyncDuplicate SyncStatus = "duplicate"
	SyncRejected  SyncStatus = "rejected"
)

type SyncResult struct {
	EnvelopeID string
	Status     SyncStatus
	DeliveryID string
	Error      string
}
