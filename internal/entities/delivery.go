package entities

import "time"

type Delivery struct {
	ID         string
	Status     DeliveryStatus
	CreatedAt  time.Time
	Actions    []Action
	KmPickup   *float64
	KmDelivery *float64
	Photos     []Photo
	Signature  *Signature
}

// TotalDistance считается только когда есть оба показания одометра.
func (d *Delivery) TotalDistance() (float64, bool) {
	if d.KmPickup == nil || d.KmDelivery == nil {
		return 0, false
	}
	return *d.KmDelivery - *d.KmPickup, true
}

func (d *Delivery) IsCompleted() bool {
	return d.Status == StatusCompleted
}

type Action struct {
	Type      ActionType
	Timestamp time.Time
	Note      string
	Km        *float64
	Comments  *string
}

type Photo struct {
	Timestamp time.Time
	Data      string
}

type Signature struct {
	Timestamp time.Time
	Data      string
}

// DeliveryModify поля, которые меняет одно действие. nil - не трогать.
type DeliveryModify struct {
	ID         string
	Status     *DeliveryStatus
	KmPickup   *float64
	KmDelivery *float64
	Signature  *Signature
}

// DeliverySummary строка списка, без фото и подписи.
type DeliverySummary struct {
	ID           string
	Status       DeliveryStatus
	CreatedAt    time.Time
	ActionsCount int64
	PhotosCount  int64
	LastActionAt time.Time
	KmPickup     *float64
	KmDelivery   *float64
}

type DeliveryFilter struct {
	Status *DeliveryStatus
	Limit  uint64
	Offset uint64
}

// ActionCommand запрос водителя на запись действия.
type ActionCommand struct {
	DeliveryID string
	Type       ActionType
	Comments   *string
	Km         *float64
	Photo      *string
	Signature  *string
	// Confirmed обязателен для действий, которые двигают статус вперед.
	Confirmed bool
	// Timestamp задается при офлайн синхронизации, иначе берется текущее время.
	Timestamp *time.Time
}

// DeliveryState заблокированная строка доставки, по которой принимается решение о переходе.
type DeliveryState struct {
	ID          string
	Status      DeliveryStatus
	KmPickup    *float64
	KmDelivery  *float64
	PhotosCount int
}
