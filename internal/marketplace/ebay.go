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

const ebayFindingURL = "https://svcs.ebay.com/services/search/FindingService/v1"

// The Finding API wraps every scalar in a one-element array.
type ebayItem struct {
	ItemID        []string `json:"itemId"`
	Title         []string `json:"title"`
	ViewItemURL   []string `json:"viewItemURL"`
	GalleryURL    []string `json:"galleryURL"`
	SellingStatus []struct {
		CurrentPrice []struct {
			CurrencyID string `json:"@currencyId"`
			Value      string `json:"__value__"`
		} `json:"currentPrice"`
	} `json:"sellingStatus"`
	Condition []struct {
		ConditionDisplayName []string `json:"conditionDisplayName"`
	} `json:"condition"`
}

type ebayFindResponse struct {
	FindItemsByKeywordsResponse []struct {
		Ack          []string `json:"ack"`
		SearchResult []struct {
			Count string     `json:"@count"`
			Item  []ebayItem `json:"item"`
		} `json:"searchResult"`
	} `json:"findItemsByKeywordsResponse"`
}

// EbayClient searches the eBay Finding API.
type EbayClient struct {
	appID      string
	campaignID string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	drops      *droplog.Store
}

// NewEbayClient builds an eBay source. An empty appID produces a client that
// always returns nothing, satisfying the never-fail fetcher contract.
func NewEbayClient(appID, campaignID string, logger *slog.Logger, drops *droplog.Store) *EbayClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &EbayClient{
		appID:      appID,
		campaignID: campaignID,
		baseURL:    ebayFindingURL,
		httpClient: newHTTPClient(),
		logger:     logger,
		drops:      drops,
	}
}

// Store reports which marketplace this client serves.
func (c *EbayClient) Store() model.Store { return model.StoreEbay }

// Fetch runs a keyword search and normalizes the results. Failures are logged
// and absorbed as an empty list.
func (c *EbayClient) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	if c.appID == "" {
		c.logger.Warn("ebay credentials not configured, skipping search")
		return nil
	}

	query := strings.TrimSpace(strings.Join(spec.Keywords, " "))
	if query == "" {
		c.logger.Warn("ebay search skipped, no keywords in spec")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, spec.Limit), nil)
	if err != nil {
		c.logger.Warn("ebay request build failed", slog.Any("error", err))
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("ebay search failed", slog.Any("error", err))
		return nil
	}

	var payload ebayFindResponse
	if err := decodeJSON(resp, &payload); err != nil {
		c.logger.Warn("ebay response malformed", slog.Any("error", err))
		return nil
	}

	if len(payload.FindItemsByKeywordsResponse) == 0 {
		c.logger.Warn("ebay response missing findItemsByKeywordsResponse")
		return nil
	}
	find := payload.FindItemsByKeywordsResponse[0]
	if first(find.Ack) != "Success" {
		c.logger.Warn("ebay search not acknowledged", slog.String("ack", first(find.Ack)))
		return nil
	}

	var items []ebayItem
	if len(find.SearchResult) > 0 {
		items = find.SearchResult[0].Item
	}

	products := make([]model.NormalizedProduct, 0, len(items))
	for _, item := range items {
		product, reason := c.normalize(item)
		if reason != "" {
			c.recordDrop(first(item.ItemID), reason)
			continue
		}
		if product.Price.Value == 0 || !withinBudget(product.Price.Value, spec) {
			continue
		}
		products = append(products, product)
	}
	return truncate(products, spec.Limit)
}

func (c *EbayClient) searchURL(query string, limit int) string {
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	params := url.Values{}
	params.Set("OPERATION-NAME", "findItemsByKeywords")
	params.Set("SERVICE-VERSION", "1.0.0")
	params.Set("SECURITY-APPNAME", c.appID)
	params.Set("RESPONSE-DATA-FORMAT", "JSON")
	params.Set("REST-PAYLOAD", "true")
	params.Set("keywords", query)
	params.Set("paginationInput.entriesPerPage", strconv.Itoa(limit))
	params.Set("sortOrder", "BestMatch")
	return c.baseURL + "?" + params.Encode()
}

// normalize converts a Finding API item, returning a drop reason when the
// item cannot satisfy the normalized-product invariants.
func (c *EbayClient) normalize(item ebayItem) (model.NormalizedProduct, string) {
	itemID := first(item.ItemID)
	title := first(item.Title)
	viewURL := first(item.ViewItemURL)
	if itemID == "" || title == "" || viewURL == "" {
		return model.NormalizedProduct{}, "missing id, title, or link"
	}

	price := 0.0
	currency := "USD"
	if len(item.SellingStatus) > 0 && len(item.SellingStatus[0].CurrentPrice) > 0 {
		cp := item.SellingStatus[0].CurrentPrice[0]
		if v, err := strconv.ParseFloat(cp.Value, 64); err == nil {
			price = v
		}
		if cp.CurrencyID != "" {
			currency = cp.CurrencyID
		}
	}

	image := first(item.GalleryURL)
	if !sanitize.IsHTTPSURL(image) {
		return model.NormalizedProduct{}, "invalid image URL"
	}

	affiliate := sanitize.AffiliateURL(c.decorate(viewURL))
	if !sanitize.IsHTTPSURL(affiliate) {
		return model.NormalizedProduct{}, "invalid affiliate URL"
	}

	condition := ""
	if len(item.Condition) > 0 {
		condition = first(item.Condition[0].ConditionDisplayName)
	}

	badges := []string{}
	if condition == "New" {
		badges = append(badges, "brand_new")
	}
	if price > 0 && price < 50 {
		badges = append(badges, "budget_friendly")
	}

	return model.NormalizedProduct{
		ID:               "ebay_" + itemID,
		Store:            model.StoreEbay,
		Title:            title,
		DescriptionShort: title,
		Image:            image,
		Price:            model.Price{Value: price, Currency: currency},
		// The Finding API carries no seller ratings.
		Rating:       model.Rating{},
		Badges:       badges,
		AffiliateURL: affiliate,
		Raw:          map[string]any{"itemId": itemID, "condition": condition},
	}, ""
}

// decorate appends the eBay Partner Network campaign id when configured.
func (c *EbayClient) decorate(link string) string {
	if c.campaignID == "" {
		return link
	}
	u, err := url.Parse(link)
	if err != nil {
		return link
	}
	q := u.Query()
	q.Set("campid", c.campaignID)
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *EbayClient) recordDrop(nativeID, reason string) {
	if c.drops == nil {
		return
	}
	if err := c.drops.Write(string(model.StoreEbay), nativeID, reason); err != nil {
		c.logger.Warn("drop log write failed", slog.Any("error", err))
	}
}

func first(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
