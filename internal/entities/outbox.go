package entities

import "time"

type OutboxEvent struct {
	ID         string
	DeliveryID string
	Type       ActionType
	Payload    []byte
	CreatedAt  time.Time
	SentAt     *time.Time
	Attempts   int
	LastError  *string
}

// DeliveryEvent сообщение в топик событий доставки.
type DeliveryEvent struct {
	EventID    string         `json:"event_id"`
	DeliveryID string         `json:"delivery_id"`
	Type       ActionType     `json:"type"`
	Status     DeliveryStatus `json:"status"`
	Timestamp  time.Time      `json:"timestamp"`
	Km         *float64       `json:"km,omitempty"`
	KmPickup   *float64       `json:"km_pickup,omitempty"`
	KmDelivery *float64       `json:"km_delivery,omitempty"`
}

// Distance пройденный путь, если событие несет оба показания.
func (e DeliveryEvent) Distance() (float64, bool) {
	if e.KmPickup == nil || e.KmDelivery == nil {
		return 0, false
	}
	return *e.KmDelivery - *e.KmPickup, true
}

// RelayResult итог одного прохода outbox relay.
type RelayResult struct {
	Sent   int
	Failed int
}
