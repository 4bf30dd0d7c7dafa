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

const etsyListingsURL = "https://openapi.etsy.com/v3/application/listings/active"

type etsyListing struct {
	ListingID   int64  `json:"listing_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Price       *struct {
		Amount       int64  `json:"amount"`
		Divisor      int64  `json:"divisor"`
		CurrencyCode string `json:"currency_code"`
	} `json:"price"`
	Images []struct {
		URL570xN    string `json:"url_570xN"`
		URLFullxFul string `json:"url_fullxfull"`
	} `json:"images"`
	Tags        []string `json:"tags"`
	Quantity    int      `json:"quantity"`
	NumFavorers int      `json:"num_favorers"`
}

type etsySearchResponse struct {
	Count   int           `json:"count"`
	Results []etsyListing `json:"results"`
}

// EtsyClient searches the Etsy v3 Open API.
type EtsyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	drops      *droplog.Store
}

// NewEtsyClient builds an Etsy source; empty apiKey disables it.
func NewEtsyClient(apiKey string, logger *slog.Logger, drops *droplog.Store) *EtsyClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &EtsyClient{
		apiKey:     apiKey,
		baseURL:    etsyListingsURL,
		httpClient: newHTTPClient(),
		logger:     logger,
		drops:      drops,
	}
}

// Store reports which marketplace this client serves.
func (c *EtsyClient) Store() model.Store { return model.StoreEtsy }

// Fetch runs a keyword search against active listings.
func (c *EtsyClient) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	if c.apiKey == "" {
		c.logger.Warn("etsy API key not configured, skipping search")
		return nil
	}

	query := strings.TrimSpace(strings.Join(spec.Keywords, " "))
	if query == "" {
		c.logger.Warn("etsy search skipped, no keywords in spec")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, spec.Limit), nil)
	if err != nil {
		c.logger.Warn("etsy request build failed", slog.Any("error", err))
		return nil
	}
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("etsy search failed", slog.Any("error", err))
		return nil
	}

	var payload etsySearchResponse
	if err := decodeJSON(resp, &payload); err != nil {
		c.logger.Warn("etsy response malformed", slog.Any("error", err))
		return nil
	}

	products := make([]model.NormalizedProduct, 0, len(payload.Results))
	for _, listing := range payload.Results {
		product, reason := c.normalize(listing)
		if reason != "" {
			c.recordDrop(strconv.FormatInt(listing.ListingID, 10), reason)
			continue
		}
		if product.Price.Value == 0 || !withinBudget(product.Price.Value, spec) {
			continue
		}
		products = append(products, product)
	}
	return truncate(products, spec.Limit)
}

func (c *EtsyClient) searchURL(query string, limit int) string {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	params := url.Values{}
	params.Set("keywords", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", "0")
	params.Set("sort_on", "relevancy")
	return c.baseURL + "?" + params.Encode()
}

func (c *EtsyClient) normalize(listing etsyListing) (model.NormalizedProduct, string) {
	if listing.ListingID == 0 || listing.Title == "" || listing.URL == "" {
		return model.NormalizedProduct{}, "missing id, title, or link"
	}

	price := 0.0
	currency := "USD"
	if listing.Price != nil && listing.Price.Divisor > 0 {
		price = float64(listing.Price.Amount) / float64(listing.Price.Divisor)
		if listing.Price.CurrencyCode != "" {
			currency = listing.Price.CurrencyCode
		}
	}

	image := ""
	if len(listing.Images) > 0 {
		if listing.Images[0].URLFullxFul != "" {
			image = listing.Images[0].URLFullxFul
		} else {
			image = listing.Images[0].URL570xN
		}
	}
	if !sanitize.IsHTTPSURL(image) {
		return model.NormalizedProduct{}, "invalid image URL"
	}

	affiliate := sanitize.AffiliateURL(listing.URL)
	if !sanitize.IsHTTPSURL(affiliate) {
		return model.NormalizedProduct{}, "invalid listing URL"
	}

	description := listing.Description
	if description == "" {
		description = listing.Title
	} else {
		description = clipRunes(description, 150)
	}

	badges := []string{}
	if listing.NumFavorers > 100 {
		badges = append(badges, "popular")
	}
	if price > 0 && price < 30 {
		badges = append(badges, "budget_friendly")
	}

	return model.NormalizedProduct{
		ID:               "etsy_" + strconv.FormatInt(listing.ListingID, 10),
		Store:            model.StoreEtsy,
		Title:            listing.Title,
		DescriptionShort: description,
		Image:            image,
		Price:            model.Price{Value: price, Currency: currency},
		// Public listing search exposes no review data.
		Rating:       model.Rating{},
		Badges:       badges,
		AffiliateURL: affiliate,
		Raw: map[string]any{
			"listing_id":   listing.ListingID,
			"tags":         listing.Tags,
			"num_favorers": listing.NumFavorers,
			"quantity":     listing.Quantity,
		},
	}, ""
}

func (c *EtsyClient) recordDrop(nativeID, reason string) {
	if c.drops == nil {
		return
	}
	if err := c.drops.Write(string(model.StoreEtsy), nativeID, reason); err != nil {
		c.logger.Warn("drop log write failed", slog.Any("error", err))
	}
}
