package kstream

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// NewReader creates a consumer-group reader for topic. Offsets auto-commit
// once a second; rebalancing is handled by the group coordinator.
func NewReader(broker, topic, groupID string) *kafka.Reader {
	// segmentio/kafka-go: consumer group with automatic offset management.
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        []string{broker},
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3,
		MaxBytes:       104857600,
		CommitInterval: time.Second,
	})
}
