package notify

import (
	"context"

	"github.com/SergeyBogomolovv/sms-order-service/internal/entities"
)

type Notifier interface {
	Notify(ctx context.Context, event entities.OrderEvent)
}

// Multi рассылает событие всем получателям по очереди.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, event entities.OrderEvent) {
	for _, n := range m {
		n.Notify(ctx, event)
	}
}

type Nop struct{}

func (Nop) Notify(context.Context, entities.OrderEvent) {}
