package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"trendella-backend/internal/droplog"
	"trendella-backend/internal/model"
	"trendella-backend/internal/sanitize"
)

type rapidAPIProduct struct {
	ASIN                 string  `json:"asin"`
	ProductTitle         string  `json:"product_title"`
	ProductPrice         string  `json:"product_price"`
	ProductOriginalPrice string  `json:"product_original_price"`
	ProductStarRating    string  `json:"product_star_rating"`
	ProductNumRatings    int     `json:"product_num_ratings"`
	ProductURL           string  `json:"product_url"`
	ProductPhoto         string  `json:"product_photo"`
	IsPrime              bool    `json:"is_prime"`
	SalesVolume          string  `json:"sales_volume"`
}

type rapidAPISearchResponse struct {
	Data struct {
		Products []rapidAPIProduct `json:"products"`
	} `json:"data"`
}

// AmazonClient searches Amazon through the RapidAPI real-time search host.
type AmazonClient struct {
	apiKey     string
	host       string
	scheme     string
	httpClient *http.Client
	logger     *slog.Logger
	drops      *droplog.Store
}

// NewAmazonClient builds a RapidAPI-backed Amazon source. Missing credentials
// disable it; the curated catalog fetcher covers the gap.
func NewAmazonClient(apiKey, host string, logger *slog.Logger, drops *droplog.Store) *AmazonClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &AmazonClient{
		apiKey:     apiKey,
		host:       host,
		scheme:     "https",
		httpClient: newHTTPClient(),
		logger:     logger,
		drops:      drops,
	}
}

// Configured reports whether live Amazon search can run at all.
func (c *AmazonClient) Configured() bool { return c.apiKey != "" && c.host != "" }

// Store reports which marketplace this client serves.
func (c *AmazonClient) Store() model.Store { return model.StoreAmazon }

// Fetch runs a keyword search and normalizes the results.
func (c *AmazonClient) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	if !c.Configured() {
		c.logger.Warn("rapidapi amazon credentials not configured, skipping search")
		return nil
	}

	query := strings.TrimSpace(strings.Join(spec.Keywords, " "))
	if query == "" {
		c.logger.Warn("amazon search skipped, no keywords in spec")
		return nil
	}

	searchURL := c.scheme + "://" + c.host + "/search?query=" +
		strings.ReplaceAll(query, " ", "+") +
		"&page=1&country=US&sort_by=RELEVANCE&product_condition=ALL"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		c.logger.Warn("amazon request build failed", slog.Any("error", err))
		return nil
	}
	req.Header.Set("x-rapidapi-host", c.host)
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("amazon search failed", slog.Any("error", err))
		return nil
	}

	var payload rapidAPISearchResponse
	if err := decodeJSON(resp, &payload); err != nil {
		c.logger.Warn("amazon response malformed", slog.Any("error", err))
		return nil
	}

	products := make([]model.NormalizedProduct, 0, len(payload.Data.Products))
	for _, raw := range payload.Data.Products {
		product, reason := c.normalize(raw)
		if reason != "" {
			c.recordDrop(raw.ASIN, reason)
			continue
		}
		if product.Price.Value == 0 || !withinBudget(product.Price.Value, spec) {
			continue
		}
		products = append(products, product)
	}
	return truncate(products, spec.Limit)
}

func (c *AmazonClient) normalize(raw rapidAPIProduct) (model.NormalizedProduct, string) {
	if raw.ASIN == "" || raw.ProductTitle == "" || raw.ProductURL == "" {
		return model.NormalizedProduct{}, "missing asin, title, or link"
	}

	if !sanitize.IsHTTPSURL(raw.ProductPhoto) {
		return model.NormalizedProduct{}, "invalid image URL"
	}
	affiliate := sanitize.AffiliateURL(raw.ProductURL)
	if !sanitize.IsHTTPSURL(affiliate) {
		return model.NormalizedProduct{}, "invalid product URL"
	}

	price := parsePrice(raw.ProductPrice)
	if price == 0 {
		price = parsePrice(raw.ProductOriginalPrice)
	}
	rating := parseRating(raw.ProductStarRating)

	badges := []string{}
	if raw.IsPrime {
		badges = append(badges, "prime_shipping")
	}
	if raw.SalesVolume != "" {
		badges = append(badges, "bestseller")
	}
	if rating >= 4.5 {
		badges = append(badges, "highly_rated")
	}

	return model.NormalizedProduct{
		ID:               "amazon_" + raw.ASIN,
		Store:            model.StoreAmazon,
		Title:            raw.ProductTitle,
		DescriptionShort: raw.ProductTitle,
		Image:            raw.ProductPhoto,
		Price:            model.Price{Value: price, Currency: "USD"},
		Rating:           model.Rating{Value: rating, Count: raw.ProductNumRatings},
		Badges:           badges,
		AffiliateURL:     affiliate,
		Raw: map[string]any{
			"asin":         raw.ASIN,
			"is_prime":     raw.IsPrime,
			"sales_volume": raw.SalesVolume,
		},
	}, ""
}

func (c *AmazonClient) recordDrop(nativeID, reason string) {
	if c.drops == nil {
		return
	}
	if err := c.drops.Write(string(model.StoreAmazon), nativeID, reason); err != nil {
		c.logger.Warn("drop log write failed", slog.Any("error", err))
	}
}

// parsePrice handles display strings like "$1,299.00".
func parsePrice(value string) float64 {
	if value == "" {
		return 0
	}
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(value)
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseRating(value string) float64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	if parsed < 0 {
		return 0
	}
	if parsed > 5 {
		return 5
	}
	return parsed
}
