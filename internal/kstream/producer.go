// Package kstream publishes pipeline analytics events to Kafka. Publishing is
// fire-and-forget: a broker outage degrades analytics, never a response.
package kstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"trendella-backend/internal/model"
)

// TopicServed carries one event per completed recommendation response.
const TopicServed = "recommendations.served"

// Producer wraps an async Kafka writer for recommendation events.
type Producer struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewProducer builds a producer against broker. The writer is async so a slow
// broker cannot stall the request path.
func NewProducer(broker string, logger *slog.Logger) *Producer {
	if logger == nil {
		logger = slog.Default()
	}
	// segmentio/kafka-go: leader-ack-only async writes with automatic batching.
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        TopicServed,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		BatchBytes:   104857600,
	}
	return &Producer{writer: writer, logger: logger}
}

// PublishRecommendationServed emits one event per completed recommendation.
// Keyed by session id so one conversation stays on one partition.
func (p *Producer) PublishRecommendationServed(ctx context.Context, event model.RecommendationServed) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal served event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.SessionID),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish served event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}
