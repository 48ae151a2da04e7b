// Package notify publishes fire-and-forget notification events. Delivery is
// owned by the notification service consuming the topic.
package notify

import (
	"context"
	"fmt"

	"github.com/s21platform/stream-service/internal/model"
)

type producer interface {
	Produce(ctx context.Context, key string, value interface{}) error
}

type Dispatcher struct {
	producer producer
}

func NewDispatcher(p producer) *Dispatcher {
	return &Dispatcher{
		producer: p,
	}
}

func (d *Dispatcher) Notify(ctx context.Context, notification model.Notification) error {
	if err := d.producer.Produce(ctx, notification.StreamID, notification); err != nil {
		return fmt.Errorf("failed to produce notification: %w", err)
	}

	return nil
}
