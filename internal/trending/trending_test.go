package trending

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendella-backend/internal/model"
)

func servedEvent(phrases, stores []string) model.RecommendationServed {
	return model.RecommendationServed{
		SessionID:     "203.0.113.7",
		ProfileFilled: true,
		ProductCount:  12,
		Stores:        stores,
		SearchPhrases: phrases,
	}
}

func TestMemoryStoreCountsAndOrders(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.RecordServed(ctx, servedEvent([]string{"yoga mat", "running shoes"}, []string{"amazon"})))
	require.NoError(t, s.RecordServed(ctx, servedEvent([]string{"yoga mat"}, []string{"amazon", "etsy"})))

	phrases, err := s.TopPhrases(ctx, 10)
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, Entry{Name: "yoga mat", Count: 2}, phrases[0])
	assert.Equal(t, Entry{Name: "running shoes", Count: 1}, phrases[1])

	stores, err := s.TopStores(ctx, 1)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, Entry{Name: "amazon", Count: 2}, stores[0])
}

func TestMemoryStoreTiesOrderedByName(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.RecordServed(ctx, servedEvent([]string{"b phrase", "a phrase"}, nil)))

	phrases, err := s.TopPhrases(ctx, 10)
	require.NoError(t, err)
	require.Len(t, phrases, 2)
	assert.Equal(t, "a phrase", phrases[0].Name)
	assert.Equal(t, "b phrase", phrases[1].Name)
}

func TestMemoryStoreZeroLimit(t *testing.T) {
	s := NewMemoryStore()
	phrases, err := s.TopPhrases(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, phrases)
}

// scriptedSource plays back a fixed message sequence, then fails.
type scriptedSource struct {
	messages []kafka.Message
	finalErr error
}

func (s *scriptedSource) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(s.messages) == 0 {
		return kafka.Message{}, s.finalErr
	}
	msg := s.messages[0]
	s.messages = s.messages[1:]
	return msg, nil
}

func TestConsumerFoldsEventsAndSkipsMalformed(t *testing.T) {
	good, err := json.Marshal(servedEvent([]string{"chess set"}, []string{"ebay"}))
	require.NoError(t, err)

	stop := errors.New("source closed")
	source := &scriptedSource{
		messages: []kafka.Message{
			{Value: good},
			{Value: []byte("{not json")},
			{Value: good},
		},
		finalErr: stop,
	}

	store := NewMemoryStore()
	consumer := NewConsumer(source, store, nil)

	err = consumer.Run(context.Background())
	assert.ErrorIs(t, err, stop)

	phrases, err := store.TopPhrases(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, phrases, 1)
	assert.Equal(t, Entry{Name: "chess set", Count: 2}, phrases[0])
}
