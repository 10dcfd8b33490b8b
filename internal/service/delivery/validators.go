package delivery

import (
	"fmt"
	"math"
	"strings"

	"github.com/tarekkanon/nightshift-logistics/internal/entities"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/dataurl"
	"github.com/tarekkanon/nightshift-logistics/internal/pkg/factory/delivery_id"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func isValidDeliveryID(deliveryID string) bool {
	return delivery_id.IsValid(deliveryID)
}

func validateKm(km *float64) error {
	if km == nil {
		return nil
	}
	if math.IsNaN(*km) || math.IsInf(*km, 0) || *km < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidOdometer, *km)
	}
	return nil
}

func validatePhoto(data string, maxBytes int) error {
	parsed, err := dataurl.ParseImage(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if maxBytes > 0 && len(parsed.Data) > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, len(parsed.Data), maxBytes)
	}
	return nil
}

func validateSignature(data string, maxBytes int) error {
	parsed, err := dataurl.ParseImage(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if maxBytes > 0 && len(parsed.Data) > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrSignatureTooLarge, len(parsed.Data), maxBytes)
	}
	return nil
}

func normalizeFilter(filter entities.DeliveryFilter) (entities.DeliveryFilter, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return filter, fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, *filter.Status)
	}
	filter.Limit = EffectiveLimit(filter.Limit)
	return filter, nil
}

// EffectiveLimit размер страницы, который реально применит ListDeliveries.
func EffectiveLimit(limit uint64) uint64 {
	if limit == 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// noteFor комментарий водителя, иначе стандартная фраза для типа действия.
func noteFor(actionType entities.ActionType, comments *string) (string, *string) {
	if comments == nil {
		return actionType.DefaultNote(), nil
	}
	trimmed := strings.TrimSpace(*comments)
	if trimmed == "" {
		return actionType.DefaultNote(), nil
	}
	return trimmed, &trimmed
}
