package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every environment-derived setting the server needs. Optional
// integrations (Gemini, RapidAPI, marketplace keys, Redis, Firebase) leave
// their fields empty when unconfigured; callers fall back to deterministic or
// in-memory behavior instead of failing.
type Config struct {
	HTTPAddr string

	RedisAddr   string
	KafkaBroker string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	AffiliateAmazonTag      string
	AffiliateAliCampaignID  string
	AffiliateAliAppID       string
	AffiliateSheinSiteID    string
	AffiliateEbayCampaignID string

	RapidAPIKey        string
	RapidAPIAmazonHost string
	EbayAppID          string
	EtsyAPIKey         string
	BestBuyAPIKey      string

	FirebaseProjectID string

	CacheTTL     time.Duration
	CacheEntries int

	DropLogDir string
}

// Load reads configuration from the environment with sensible defaults.
func Load() Config {
	return Config{
		HTTPAddr: getenv("TRENDELLA_HTTP_ADDR", ":8080"),

		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiTimeout: getenvDuration("GEMINI_TIMEOUT", 8*time.Second),

		AffiliateAmazonTag:      os.Getenv("AFFILIATE_AMAZON_TAG"),
		AffiliateAliCampaignID:  os.Getenv("AFFILIATE_ALI_CAMPAIGN_ID"),
		AffiliateAliAppID:       os.Getenv("AFFILIATE_ALI_APP_ID"),
		AffiliateSheinSiteID:    os.Getenv("AFFILIATE_SHEIN_SITE_ID"),
		AffiliateEbayCampaignID: os.Getenv("AFFILIATE_EBAY_CAMPAIGN_ID"),

		RapidAPIKey:        os.Getenv("RAPIDAPI_KEY"),
		RapidAPIAmazonHost: os.Getenv("RAPIDAPI_AMAZON_HOST"),
		EbayAppID:          os.Getenv("EBAY_APP_ID"),
		EtsyAPIKey:         os.Getenv("ETSY_API_KEY"),
		BestBuyAPIKey:      os.Getenv("BESTBUY_API_KEY"),

		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),

		CacheTTL:     getenvDuration("FETCH_CACHE_TTL", 20*time.Minute),
		CacheEntries: getenvInt("FETCH_CACHE_ENTRIES", 128),

		DropLogDir: getenv("DROPLOG_DIR", "./data/dropped"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
