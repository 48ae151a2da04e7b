package sync

import (
	"context"
	"fmt"

	"github.com/s21platform/stream-service/internal/model"
)

// Queue is the producer side of the sync pipeline. Tasks are keyed by stream
// id, so the consumer sees all mutations of one stream in order.
type Queue struct {
	producer Producer
}

func NewQueue(producer Producer) *Queue {
	return &Queue{
		producer: producer,
	}
}

func (q *Queue) Enqueue(ctx context.Context, task model.SyncTask) error {
	if err := q.producer.Produce(ctx, task.StreamID, task); err != nil {
		return fmt.Errorf("failed to produce sync task: %w", err)
	}

	return nil
}
