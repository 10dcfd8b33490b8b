package delivery

import "github.com/tarekkanon/nightshift-logistics/internal/entities"

func ToDomain(d *DeliveryDB, actions []ActionDB, photos []PhotoDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	delivery := &entities.Delivery{
		ID:         d.ID,
		Status:     entities.DeliveryStatus(d.Status),
		CreatedAt:  d.CreatedAt.UTC(),
		KmPickup:   d.KmPickup,
		KmDelivery: d.KmDelivery,
		Actions:    make([]entities.Action, 0, len(actions)),
		Photos:     make([]entities.Photo, 0, len(photos)),
	}

	for i := range actions {
		delivery.Actions = append(delivery.Actions, ToActionDomain(&actions[i]))
	}
	for _, p := range photos {
		delivery.Photos = append(delivery.Photos, entities.Photo{Timestamp: p.TakenAt.UTC(), Data: p.Data})
	}

	if d.SignatureData != nil {
		signature := &entities.Signature{Data: *d.SignatureData}
		if d.SignatureAt != nil {
			signature.Timestamp = d.SignatureAt.UTC()
		}
		delivery.Signature = signature
	}

	return delivery
}

func ToActionDomain(a *ActionDB) entities.Action {
	return entities.Action{
		Type:      entities.ActionType(a.Type),
		Timestamp: a.OccurredAt.UTC(),
		Note:      a.Note,
		Km:        a.Km,
		Comments:  a.Comments,
	}
}

func ToStateDomain(s *DeliveryStateDB) *entities.DeliveryState {
	if s == nil {
		return nil
	}
	return &entities.DeliveryState{
		ID:          s.ID,
		Status:      entities.DeliveryStatus(s.Status),
		KmPickup:    s.KmPickup,
		KmDelivery:  s.KmDelivery,
		PhotosCount: s.PhotosCount,
	}
}

func ToSummaryDomainList(rows []DeliverySummaryDB) []entities.DeliverySummary {
	summaries := make([]entities.DeliverySummary, 0, len(rows))
	for _, s := range rows {
		summaries = append(summaries, entities.DeliverySummary{
			ID:           s.ID,
			Status:       entities.DeliveryStatus(s.Status),
			CreatedAt:    s.CreatedAt.UTC(),
			ActionsCount: s.ActionsCount,
			PhotosCount:  s.PhotosCount,
			LastActionAt: s.LastActionAt.UTC(),
			KmPickup:     s.KmPickup,
			KmDelivery:   s.KmDelivery,
		})
	}
	return summaries
}
