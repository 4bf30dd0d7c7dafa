package marketplace

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trendella-backend/internal/droplog"
	"trendella-backend/internal/model"
	"trendella-backend/internal/sanitize"
)

const bestBuyProductsURL = "https://api.bestbuy.com/v1/products"

type bestBuyProduct struct {
	SKU                   int64    `json:"sku"`
	Name                  string   `json:"name"`
	SalePrice             *float64 `json:"salePrice"`
	RegularPrice          *float64 `json:"regularPrice"`
	OnSale                bool     `json:"onSale"`
	URL                   string   `json:"url"`
	Image                 string   `json:"image"`
	LargeImage            string   `json:"largeImage"`
	CustomerReviewAverage float64  `json:"customerReviewAverage"`
	CustomerReviewCount   int      `json:"customerReviewCount"`
	ShortDescription      string   `json:"shortDescription"`
	Manufacturer          string   `json:"manufacturer"`
	ModelNumber           string   `json:"modelNumber"`
}

type bestBuySearchResponse struct {
	Total    int              `json:"total"`
	Products []bestBuyProduct `json:"products"`
}

// BestBuyClient searches the Best Buy Products API.
type BestBuyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	drops      *droplog.Store
}

// NewBestBuyClient builds a Best Buy source; empty apiKey disables it.
func NewBestBuyClient(apiKey string, logger *slog.Logger, drops *droplog.Store) *BestBuyClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &BestBuyClient{
		apiKey:     apiKey,
		baseURL:    bestBuyProductsURL,
		httpClient: newHTTPClient(),
		logger:     logger,
		drops:      drops,
	}
}

// Store reports which marketplace this client serves.
func (c *BestBuyClient) Store() model.Store { return model.StoreBestBuy }

// Fetch runs a keyword search and normalizes the results.
func (c *BestBuyClient) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	if c.apiKey == "" {
		c.logger.Warn("bestbuy API key not configured, skipping search")
		return nil
	}

	query := strings.TrimSpace(strings.Join(spec.Keywords, " "))
	if query == "" {
		c.logger.Warn("bestbuy search skipped, no keywords in spec")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, spec.Limit), nil)
	if err != nil {
		c.logger.Warn("bestbuy request build failed", slog.Any("error", err))
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("bestbuy search failed", slog.Any("error", err))
		return nil
	}

	var payload bestBuySearchResponse
	if err := decodeJSON(resp, &payload); err != nil {
		c.logger.Warn("bestbuy response malformed", slog.Any("error", err))
		return nil
	}

	products := make([]model.NormalizedProduct, 0, len(payload.Products))
	for _, raw := range payload.Products {
		product, reason := c.normalize(raw)
		if reason != "" {
			c.recordDrop(strconv.FormatInt(raw.SKU, 10), reason)
			continue
		}
		if product.Price.Value == 0 || !withinBudget(product.Price.Value, spec) {
			continue
		}
		products = append(products, product)
	}
	return truncate(products, spec.Limit)
}

// searchURL uses the Best Buy (search=keyword) query syntax.
func (c *BestBuyClient) searchURL(query string, limit int) string {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("format", "json")
	params.Set("show", "sku,name,salePrice,regularPrice,onSale,url,image,largeImage,customerReviewAverage,customerReviewCount,shortDescription,manufacturer,modelNumber")
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("page", "1")
	return c.baseURL + "(search=" + url.QueryEscape(query) + ")?" + params.Encode()
}

func (c *BestBuyClient) normalize(raw bestBuyProduct) (model.NormalizedProduct, string) {
	if raw.SKU == 0 || raw.Name == "" || raw.URL == "" {
		return model.NormalizedProduct{}, "missing sku, name, or link"
	}

	price := 0.0
	if raw.SalePrice != nil {
		price = *raw.SalePrice
	} else if raw.RegularPrice != nil {
		price = *raw.RegularPrice
	}

	image := raw.LargeImage
	if image == "" {
		image = raw.Image
	}
	if !sanitize.IsHTTPSURL(image) {
		return model.NormalizedProduct{}, "invalid image URL"
	}

	affiliate := sanitize.AffiliateURL(raw.URL)
	if !sanitize.IsHTTPSURL(affiliate) {
		return model.NormalizedProduct{}, "invalid product URL"
	}

	rating := raw.CustomerReviewAverage
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}

	badges := []string{}
	if raw.OnSale {
		badges = append(badges, "on_sale")
	}
	if rating >= 4.5 {
		badges = append(badges, "highly_rated")
	}
	if price > 0 && price < 50 {
		badges = append(badges, "budget_friendly")
	}

	description := raw.ShortDescription
	if description == "" {
		description = raw.Name
	}

	return model.NormalizedProduct{
		ID:               "bestbuy_" + strconv.FormatInt(raw.SKU, 10),
		Store:            model.StoreBestBuy,
		Title:            raw.Name,
		DescriptionShort: description,
		Image:            image,
		Price:            model.Price{Value: price, Currency: "USD"},
		Rating:           model.Rating{Value: rating, Count: raw.CustomerReviewCount},
		Badges:           badges,
		AffiliateURL:     affiliate,
		Raw: map[string]any{
			"sku":          raw.SKU,
			"manufacturer": raw.Manufacturer,
			"modelNumber":  raw.ModelNumber,
			"onSale":       raw.OnSale,
		},
	}, ""
}

func (c *BestBuyClient) recordDrop(nativeID, reason string) {
	if c.drops == nil {
		return
	}
	if err := c.drops.Write(string(model.StoreBestBuy), nativeID, reason); err != nil {
		c.logger.Warn("drop log write failed", slog.Any("error", err))
	}
}
