package marketplace

import (
	"net/url"

	"trendella-backend/internal/model"
)

// SearchURL builds the public search deep link for a store and query, used
// for the Gemini link suggestions surfaced alongside products.
func SearchURL(store model.Store, query string) string {
	encoded := url.QueryEscape(query)
	switch store {
	case model.StoreAmazon:
		return "https://www.amazon.com/s?k=" + encoded
	case model.StoreAliExpress:
		return "https://www.aliexpress.com/w/wholesale-" + encoded + ".html"
	case model.StoreShein:
		return "https://www.shein.com/pse/" + encoded + ".html"
	case model.StoreEbay:
		return "https://www.ebay.com/sch/i.html?_nkw=" + encoded
	case model.StoreEtsy:
		return "https://www.etsy.com/search?q=" + encoded
	case model.StoreBestBuy:
		return "https://www.bestbuy.com/site/searchpage.jsp?st=" + encoded
	default:
		return ""
	}
}
