// Package calendar consumes sync tasks from the sync topic and applies them
// against the external provider.
package calendar

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/stream-service/internal/config"
	"github.com/s21platform/stream-service/internal/model"
)

type adapter interface {
	Apply(ctx context.Context, task model.SyncTask) error
}

type Handler struct {
	adapter adapter
}

func New(a adapter) *Handler {
	return &Handler{
		adapter: a,
	}
}

// Handler processes one sync task message. A provider failure is logged and
// swallowed so the consumer keeps draining; local state stays authoritative
// either way.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("SyncTaskHandler")

	var task model.SyncTask
	if err := json.Unmarshal(in, &task); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal sync task: %v", err))
		return
	}

	if err := h.adapter.Apply(ctx, task); err != nil {
		logger.Warn(fmt.Sprintf("failed to apply %s sync for stream %s: %v", task.Operation, task.StreamID, err))
	}
}
