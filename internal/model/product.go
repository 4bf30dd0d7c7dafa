package model

// Store identifies a supported marketplace.
type Store string

const (
	StoreAmazon     Store = "amazon"
	StoreAliExpress Store = "aliexpress"
	StoreShein      Store = "shein"
	StoreEbay       Store = "ebay"
	StoreEtsy       Store = "etsy"
	StoreBestBuy    Store = "bestbuy"
)

// AllStores is the default store priority ordering.
var AllStores = []Store{StoreAmazon, StoreAliExpress, StoreShein, StoreEbay, StoreEtsy, StoreBestBuy}

// SortOrder controls result ordering requested from a fetcher.
type SortOrder string

const (
	SortRelevance     SortOrder = "relevance"
	SortPriceLowHigh  SortOrder = "price_low_high"
	SortPriceHighLow  SortOrder = "price_high_low"
)

// Price is a single monetary amount.
type Price struct {
	Value    float64 `json:"value" validate:"min=0"`
	Currency string  `json:"currency" validate:"required"`
}

// PriceRange is the budget band inside a query spec.
type PriceRange struct {
	Min      float64 `json:"min" validate:"min=0"`
	Max      float64 `json:"max" validate:"min=0"`
	Currency string  `json:"currency" validate:"required"`
}

// Rating aggregates review stars and volume.
type Rating struct {
	Value float64 `json:"value" validate:"min=0,max=5"`
	Count int     `json:"count" validate:"min=0"`
}

// ProductQuerySpec is the normalized search request every fetcher consumes.
// Limit caps a single fetch pass before cross-store merging.
type ProductQuerySpec struct {
	Keywords        []string   `json:"keywords" validate:"dive,min=1"`
	Categories      []string   `json:"categories" validate:"dive,min=1"`
	Price           PriceRange `json:"price" validate:"required"`
	BrandsPreferred []string   `json:"brands_preferred" validate:"dive,min=1"`
	ColorsPreferred []string   `json:"colors_preferred" validate:"dive,min=1"`
	StorePriority   []Store    `json:"store_priority" validate:"dive,oneof=amazon aliexpress shein ebay etsy bestbuy"`
	Limit           int        `json:"limit" validate:"min=1,max=50"`
	Sort            SortOrder  `json:"sort" validate:"oneof=relevance price_low_high price_high_low"`
}

// NormalizedProduct is the canonical cross-marketplace product shape. ID is
// stable across fetches ({store}_{native_id}); Image and AffiliateURL are
// guaranteed https after normalization; fetchers drop items that cannot
// satisfy this instead of emitting them.
type NormalizedProduct struct {
	ID               string         `json:"id" validate:"required"`
	Store            Store          `json:"store" validate:"required,oneof=amazon aliexpress shein ebay etsy bestbuy"`
	Title            string         `json:"title" validate:"required"`
	DescriptionShort string         `json:"description_short"`
	Image            string         `json:"image" validate:"required,url,startswith=https://"`
	Price            Price          `json:"price" validate:"required"`
	Rating           Rating         `json:"rating"`
	Badges           []string       `json:"badges"`
	AffiliateURL     string         `json:"affiliate_url" validate:"required,url,startswith=https://"`
	Raw              map[string]any `json:"raw"`

	// Catalog metadata consumed by ranking and explanations. Live-API sources
	// may leave these empty.
	Interests  []string `json:"interests,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Brands     []string `json:"brands,omitempty"`

	// KeywordMatched is set by a fetcher when the product passed its keyword
	// filter, worth a scoring boost later.
	KeywordMatched bool `json:"keyword_matched,omitempty"`
}

// GeminiLinkSuggestion is a marketplace deep link for an AI-generated search
// phrase. It is not a product and is never deduplicated against products.
type GeminiLinkSuggestion struct {
	Store Store  `json:"store"`
	Query string `json:"query"`
	URL   string `json:"url"`
}

// Explanation pairs a ranked product with its natural-language justification.
type Explanation struct {
	ProductID string `json:"product_id"`
	Why       string `json:"why"`
}

// RenderingMeta is the machine-readable part of the response the UI branches on.
type RenderingMeta struct {
	ProfileFilled bool                   `json:"profile_filled"`
	NextAction    string                 `json:"next_action"`
	GeminiLinks   []GeminiLinkSuggestion `json:"gemini_links"`
}

// RenderingContract is the only artifact the pipeline exposes to the UI.
type RenderingContract struct {
	Meta                RenderingMeta       `json:"meta"`
	Explanations        []Explanation       `json:"explanations"`
	FollowUpSuggestions []string            `json:"follow_up_suggestions"`
	ProductsRanked      []string            `json:"products_ranked"`
	Products            []NormalizedProduct `json:"products"`
}
