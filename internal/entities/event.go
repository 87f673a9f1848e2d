package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCreated     EventType = "created"
	EventSMSReceived EventType = "sms_received"
	EventCanceled    EventType = "canceled"
	EventRetried     EventType = "retried"
	EventRemoved     EventType = "removed"
	EventTimedOut    EventType = "timed_out"
)

// OrderEvent описывает изменение заказа, уже записанное в хранилище.
type OrderEvent struct {
	ID      string    `json:"id"`
	Type    EventType `json:"type"`
	OrderID string    `json:"order_id"`
	Status  Status    `json:"status"`
	SMS     string    `json:"sms,omitempty"`
	At      time.Time `json:"at"`
}

func NewOrderEvent(t EventType, o Order) OrderEvent {
	return OrderEvent{
		ID:      uuid.NewString(),
		Type:    t,
		OrderID: o.ID,
		Status:  o.Status,
		SMS:     o.SMS,
		At:      time.Now().UTC(),
	}
}
