package model

// RecommendationServed is the analytics event emitted after a recommendation
// request completes. It is published to Kafka topic recommendations.served and
// consumed by downstream reporting.
type RecommendationServed struct {
	SessionID      string   `json:"session_id"`
	ProfileFilled  bool     `json:"profile_filled"`
	ProductCount   int      `json:"product_count"`
	Stores         []string `json:"stores"`
	SearchPhrases  []string `json:"search_phrases"`
	DurationMillis int64    `json:"duration_ms"`
	Timestamp      string   `json:"timestamp"`
}
