//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, delivery entities.Delivery) error
	GetByID(ctx context.Context, deliveryID string) (*entities.Delivery, error)
	GetStateForUpdate(ctx context.Context, deliveryID string) (*entities.DeliveryState, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.DeliverySummary, error)

	AppendAction(ctx context.Context, deliveryID string, action entities.Action) error
	AppendPhoto(ctx context.Context, deliveryID string, photo entities.Photo) error
	Update(ctx context.Context, deliveryModify entities.DeliveryModify) error
}

type OutboxRepository interface {
	Add(ctx context.Context, event entities.OutboxEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type IDGenerator interface {
	NewID() (string, error)
}

type Clock interface {
	Now() time.Time
}
