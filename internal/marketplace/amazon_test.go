package marketplace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendella-backend/internal/model"
)

const rapidAPIFixture = `{
  "data": {
    "products": [
      {
        "asin": "B0TEST0001",
        "product_title": "USB-C Power Bank",
        "product_price": "$39.99",
        "product_star_rating": "4.6",
        "product_num_ratings": 8900,
        "product_url": "https://www.amazon.com/dp/B0TEST0001",
        "product_photo": "https://m.media-amazon.com/images/I/0001.jpg",
        "is_prime": true,
        "sales_volume": "5K+ bought in past month"
      },
      {
        "asin": "B0TEST0002",
        "product_title": "Laptop Docking Station",
        "product_price": "$1,299.00",
        "product_url": "https://www.amazon.com/dp/B0TEST0002",
        "product_photo": "https://m.media-amazon.com/images/I/0002.jpg"
      },
      {
        "asin": "B0TEST0003",
        "product_title": "Cable Organizer",
        "product_price": "not available",
        "product_url": "https://www.amazon.com/dp/B0TEST0003",
        "product_photo": "https://m.media-amazon.com/images/I/0003.jpg"
      }
    ]
  }
}`

func amazonSpec() model.ProductQuerySpec {
	return model.ProductQuerySpec{
		Keywords: []string{"power", "bank"},
		Price:    model.PriceRange{Min: 20, Max: 100, Currency: "USD"},
		Limit:    24,
		Sort:     model.SortRelevance,
	}
}

func newTestAmazonClient(t *testing.T, handler http.HandlerFunc) (*AmazonClient, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	host := strings.TrimPrefix(srv.URL, "http://")
	c := NewAmazonClient("key-rapid", host, nil, nil)
	c.scheme = "http"
	return c, srv.Close
}

func TestAmazonFetchNormalizesAndFilters(t *testing.T) {
	c, done := newTestAmazonClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-rapid", r.Header.Get("x-rapidapi-key"))
		// The raw URL carries "power+bank"; Get decodes '+' back to a space.
		assert.Equal(t, "power bank", r.URL.Query().Get("query"))
		w.Write([]byte(rapidAPIFixture))
	})
	defer done()

	products := c.Fetch(context.Background(), amazonSpec())

	// The docking station is over budget; the organizer has no parseable price.
	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "amazon_B0TEST0001", p.ID)
	assert.Equal(t, model.StoreAmazon, p.Store)
	assert.InDelta(t, 39.99, p.Price.Value, 0.001)
	assert.InDelta(t, 4.6, p.Rating.Value, 0.001)
	assert.Equal(t, 8900, p.Rating.Count)
	assert.ElementsMatch(t, []string{"prime_shipping", "bestseller", "highly_rated"}, p.Badges)
}

func TestAmazonFetchSkipsWhenUnconfigured(t *testing.T) {
	c := NewAmazonClient("", "", nil, nil)
	assert.False(t, c.Configured())
	assert.Nil(t, c.Fetch(context.Background(), amazonSpec()))
}

func TestParsePrice(t *testing.T) {
	assert.InDelta(t, 1299.0, parsePrice("$1,299.00"), 0.001)
	assert.InDelta(t, 12.5, parsePrice("12.5"), 0.001)
	assert.Zero(t, parsePrice(""))
	assert.Zero(t, parsePrice("see details"))
}

func TestParseRating(t *testing.T) {
	assert.InDelta(t, 4.6, parseRating("4.6"), 0.001)
	assert.Equal(t, 5.0, parseRating("9.9"))
	assert.Zero(t, parseRating("-1"))
	assert.Zero(t, parseRating(""))
}
