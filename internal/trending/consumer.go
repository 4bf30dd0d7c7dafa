package trending

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"

	"trendella-backend/internal/model"
)

// MessageSource is the slice of kafka.Reader the consumer needs; tests feed
// messages without a broker.
type MessageSource interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer folds served events from the analytics topic into a trending store.
type Consumer struct {
	source MessageSource
	store  Store
	logger *slog.Logger
}

// NewConsumer wires a message source to a trending store.
func NewConsumer(source MessageSource, store Store, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{source: source, store: store, logger: logger}
}

// Run consumes until the context is cancelled or the source fails. Malformed
// events are skipped; a failing store write is logged and the event dropped,
// the counters are advisory.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("trending consumer started")
	for {
		msg, err := c.source.ReadMessage(ctx)
		if err != nil {
			return err
		}

		var event model.RecommendationServed
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Warn("skipping malformed served event", slog.Any("error", err))
			continue
		}

		if err := c.store.RecordServed(ctx, event); err != nil {
			c.logger.Warn("trending update failed", slog.Any("error", err))
		}
	}
}
