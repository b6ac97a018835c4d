package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Evictor drops conversations that have been idle since before.
type Evictor interface {
	EvictIdle(ctx context.Context, before time.Time) (int, error)
}

// ConversationJanitor periodically evicts abandoned conversations. A booking
// left half way is dropped together with its conversation.
type ConversationJanitor struct {
	store    Evictor
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	log      *zap.Logger
}

func NewConversationJanitor(store Evictor, ttl, interval time.Duration, log *zap.Logger) *ConversationJanitor {
	return &ConversationJanitor{
		store:    store,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		log:      log.With(zap.String("worker", "conversation_janitor")),
	}
}

// Start blocks until ctx is cancelled.
func (w *ConversationJanitor) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("Conversation janitor started",
		zap.Duration("ttl", w.ttl),
		zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Conversation janitor stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ConversationJanitor) sweep(ctx context.Context) int {
	n, err := w.store.EvictIdle(ctx, w.now().Add(-w.ttl))
	if err != nil {
		w.log.Error("Failed to evict idle conversations", zap.Error(err))
		return 0
	}
	if n > 0 {
		w.log.Info("Idle conversations evicted", zap.Int("count", n))
	}
	return n
}
