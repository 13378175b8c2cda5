package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status - статус заказа. Пустое значение означает "не задан".
type Status string

const (
	StatusPending        Status = "pending"
	StatusAccepted       Status = "accepted"
	StatusRejected       Status = "rejected"
	StatusPreparing      Status = "preparing"
	StatusGivenToCourier Status = "given_to_courier"
	StatusOnTransit      Status = "on_transit"
	StatusDelivered      Status = "delivered"
)

var knownStatuses = map[Status]struct{}{
	StatusPending:        {},
	StatusAccepted:       {},
	StatusRejected:       {},
	StatusPreparing:      {},
	StatusGivenToCourier: {},
	StatusOnTransit:      {},
	StatusDelivered:      {},
}

// ParseStatus - разбирает статус из строки; неизвестная строка - ошибка.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := knownStatuses[st]; !ok {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return st, nil
}

// IsDeliveryPhase - статус, который может выставить сервис доставки.
func (s Status) IsDeliveryPhase() bool {
	switch s {
	case StatusGivenToCourier, StatusOnTransit, StatusDelivered:
		return true
	default:
		return false
	}
}

// IsTerminal - после этого статуса заказ больше не меняется.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusRejected
}

// UnmarshalJSON - принимает только известные статусы; null и "" оставляют статус пустым.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || *raw == "" {
		*s = ""
		return nil
	}
	st, err := ParseStatus(*raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
