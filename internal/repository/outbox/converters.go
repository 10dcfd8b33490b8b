package outbox

import "github.com/tarekkanon/nightshift-logistics/internal/entities"

func ToDomainList(events []OutboxEventDB) []entities.OutboxEvent {
	result := make([]entities.OutboxEvent, 0, len(events))
	for _, e := range events {
		result = append(result, entities.OutboxEvent{
			ID:         e.ID,
			DeliveryID: e.DeliveryID,
			Type:       entities.ActionType(e.Type),
			Payload:    e.Payload,
			CreatedAt:  e.CreatedAt.UTC(),
			SentAt:     e.SentAt,
			Attempts:   e.Attempts,
			LastError:  e.LastError,
		})
	}
	return result
}
