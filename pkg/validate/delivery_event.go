package validate

import (
	"fmt"

	"github.com/Gunvolt24/food_orders/internal/domain"
	"github.com/google/uuid"
)

// DeliveryEventFromJSON - разбор и проверка сообщения сервиса доставки.
// Любая проблема оборачивает domain.ErrInvalidDeliveryEvent: такое сообщение
// повторять бессмысленно.
func DeliveryEventFromJSON(raw []byte) (*domain.DeliveryStatusEvent, error) {
	var ev domain.DeliveryStatusEvent
	if err := DecodeStrict(raw, &ev); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidDeliveryEvent, err)
	}
	if ev.OrderID == uuid.Nil {
		return nil, fmt.Errorf("%w: order_id is required", domain.ErrInvalidDeliveryEvent)
	}
	if ev.Status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrInvalidDeliveryEvent)
	}
	if !ev.Status.IsDeliveryPhase() {
		return nil, fmt.Errorf("%w: status %q cannot be set by delivery", domain.ErrInvalidDeliveryEvent, ev.Status)
	}
	return &ev, nil
}
