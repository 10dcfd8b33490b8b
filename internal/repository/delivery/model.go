package delivery

import "time"

type DeliveryDB struct {
	ID            string     `db:"id"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	KmPickup      *float64   `db:"km_pickup"`
	KmDelivery    *float64   `db:"km_delivery"`
	SignatureData *string    `db:"signature_data"`
	SignatureAt   *time.Time `db:"signature_at"`
}

type ActionDB struct {
	Seq        int64     `db:"seq"`
	Type       string    `db:"type"`
	OccurredAt time.Time `db:"occurred_at"`
	Note       string    `db:"note"`
	Km         *float64  `db:"km"`
	Comments   *string   `db:"comments"`
}

type PhotoDB struct {
	TakenAt time.Time `db:"taken_at"`
	Data    string    `db:"data"`
}

type DeliveryStateDB struct {
	ID          string   `db:"id"`
	Status      string   `db:"status"`
	KmPickup    *float64 `db:"km_pickup"`
	KmDelivery  *float64 `db:"km_delivery"`
	PhotosCount int      `db:"photos_count"`
}

type DeliverySummaryDB struct {
	ID           string    `db:"id"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	KmPickup     *float64  `db:"km_pickup"`
	KmDelivery   *float64  `db:"km_delivery"`
	ActionsCount int64     `db:"actions_count"`
	PhotosCount  int64     `db:"photos_count"`
	LastActionAt time.Time `db:"last_action_at"`
}
