// Package catalog holds the curated in-memory product sets and the fetcher
// that filters them against a query spec.
package catalog

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"trendella-backend/internal/model"
	"trendella-backend/internal/sanitize"
)

const (
	fallbackAmazonTag   = "trendella-20"
	fallbackAliCampaign = "trendella_campaign"
	fallbackAliApp      = "trendella_app"
	fallbackSheinSiteID = "trendella"
)

// Decorator appends store-specific affiliate parameters to a base product URL.
type Decorator func(base string) string

// Fetcher filters a fixed catalog by a query spec. It never fails: malformed
// entries are dropped, not surfaced.
type Fetcher struct {
	store    model.Store
	items    []Item
	decorate Decorator
	logger   *slog.Logger
}

// NewFetcher builds a catalog fetcher for one store.
func NewFetcher(store model.Store, items []Item, decorate Decorator, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{store: store, items: items, decorate: decorate, logger: logger}
}

// NewAmazon returns the curated Amazon fetcher with tag decoration.
func NewAmazon(affiliateTag string, logger *slog.Logger) *Fetcher {
	tag := affiliateTag
	if tag == "" {
		tag = fallbackAmazonTag
	}
	return NewFetcher(model.StoreAmazon, Amazon, withParams(map[string]string{"tag": tag}), logger)
}

// NewAliExpress returns the curated AliExpress fetcher with portal decoration.
func NewAliExpress(campaignID, appID string, logger *slog.Logger) *Fetcher {
	if campaignID == "" {
		campaignID = fallbackAliCampaign
	}
	if appID == "" {
		appID = fallbackAliApp
	}
	return NewFetcher(model.StoreAliExpress, AliExpress, withParams(map[string]string{
		"aff_fcid":      campaignID,
		"aff_fsk":       appID,
		"aff_platform":  "portals-tool",
		"aff_trace_key": campaignID,
	}), logger)
}

// NewShein returns the curated SHEIN fetcher with site-id decoration.
func NewShein(siteID string, logger *slog.Logger) *Fetcher {
	if siteID == "" {
		siteID = fallbackSheinSiteID
	}
	return NewFetcher(model.StoreShein, Shein, withParams(map[string]string{
		"aff_id":     siteID,
		"utm_source": "affiliate",
	}), logger)
}

// Store reports which marketplace this fetcher serves.
func (f *Fetcher) Store() model.Store { return f.store }

// Fetch filters the catalog against spec and decorates affiliate links. The
// returned products are copies; catalog entries are never mutated.
func (f *Fetcher) Fetch(ctx context.Context, spec model.ProductQuerySpec) []model.NormalizedProduct {
	out := make([]model.NormalizedProduct, 0, spec.Limit)
	for _, item := range f.items {
		if spec.Limit > 0 && len(out) >= spec.Limit {
			break
		}

		product, ok := matchSpec(item.Product, spec)
		if !ok {
			continue
		}
		if !sanitize.IsHTTPSURL(product.Image) {
			f.logger.Warn("dropping catalog item with invalid image URL",
				slog.String("store", string(f.store)), slog.String("id", product.ID))
			continue
		}

		affiliate := sanitize.AffiliateURL(f.decorate(item.AffiliateBase))
		if !sanitize.IsHTTPSURL(affiliate) {
			f.logger.Warn("dropping catalog item with invalid affiliate URL",
				slog.String("store", string(f.store)), slog.String("id", product.ID))
			continue
		}
		product.AffiliateURL = affiliate
		out = append(out, product)
	}
	return out
}

// matchSpec applies the catalog filter: budget tolerance, category overlap,
// color overlap, and keyword or brand alignment. A preferred-brand match
// passes on its own so ranking can boost it instead of the filter starving it.
// Returns a copy with KeywordMatched set when the keyword filter fired.
func matchSpec(product model.NormalizedProduct, spec model.ProductQuerySpec) (model.NormalizedProduct, bool) {
	price := product.Price.Value
	if spec.Price.Min > 0 && price < spec.Price.Min*0.9 {
		return product, false
	}
	if spec.Price.Max > 0 && price > spec.Price.Max*1.1 {
		return product, false
	}

	if brandMatch(product, spec.BrandsPreferred) {
		return product, true
	}

	if !categoryMatch(product, spec.Categories) || !colorMatch(product, spec.ColorsPreferred) {
		return product, false
	}

	matched := keywordMatch(product, spec.Keywords)
	if len(spec.Keywords) > 0 && !matched {
		return product, false
	}
	product.KeywordMatched = matched
	return product, true
}

func brandMatch(product model.NormalizedProduct, preferred []string) bool {
	if len(preferred) == 0 {
		return false
	}
	for _, brand := range product.Brands {
		lower := strings.ToLower(brand)
		for _, want := range preferred {
			if strings.Contains(lower, strings.ToLower(want)) {
				return true
			}
		}
	}
	return false
}

func categoryMatch(product model.NormalizedProduct, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, category := range categories {
		lower := strings.ToLower(category)
		for _, have := range product.Categories {
			if have == lower {
				return true
			}
		}
	}
	return false
}

func colorMatch(product model.NormalizedProduct, preferred []string) bool {
	if len(preferred) == 0 {
		return true
	}
	for _, color := range product.Colors {
		lower := strings.ToLower(color)
		for _, want := range preferred {
			if strings.Contains(lower, strings.ToLower(want)) {
				return true
			}
		}
	}
	return false
}

func keywordMatch(product model.NormalizedProduct, keywords []string) bool {
	title := strings.ToLower(product.Title)
	desc := strings.ToLower(product.DescriptionShort)
	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		if strings.Contains(title, lower) || strings.Contains(desc, lower) {
			return true
		}
		for _, interest := range product.Interests {
			if strings.Contains(interest, lower) {
				return true
			}
		}
	}
	return false
}

func withParams(params map[string]string) Decorator {
	return func(base string) string {
		u, err := url.Parse(base)
		if err != nil {
			return base
		}
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
		return u.String()
	}
}
