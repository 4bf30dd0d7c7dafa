package catalog

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendella-backend/internal/model"
)

func catalogItem(id string, price float64) Item {
	return Item{
		Product: model.NormalizedProduct{
			ID:     id,
			Store:  model.StoreAmazon,
			Title:  "Wireless Earbuds",
			Image:  "https://images.example.com/" + id + ".jpg",
			Price:  model.Price{Value: price, Currency: "USD"},
			Rating: model.Rating{Value: 4.5, Count: 120},
		},
		AffiliateBase: "https://www.amazon.com/dp/" + id,
	}
}

func identity(base string) string { return base }

func querySpec() model.ProductQuerySpec {
	return model.ProductQuerySpec{
		Price: model.PriceRange{Min: 20, Max: 100, Currency: "USD"},
		Limit: 24,
		Sort:  model.SortRelevance,
	}
}

func TestFetchBudgetTolerance(t *testing.T) {
	items := []Item{
		catalogItem("p_in_low", 18.01),  // just above 20*0.9
		catalogItem("p_in_high", 109.9), // just under 100*1.1
		catalogItem("p_below", 17.5),
		catalogItem("p_above", 110.5),
	}
	f := NewFetcher(model.StoreAmazon, items, identity, nil)

	out := f.Fetch(context.Background(), querySpec())

	require.Len(t, out, 2)
	assert.Equal(t, "p_in_low", out[0].ID)
	assert.Equal(t, "p_in_high", out[1].ID)
}

func TestFetchBrandMatchPassesAlone(t *testing.T) {
	item := catalogItem("p_brand", 50)
	item.Product.Brands = []string{"Anker"}
	item.Product.Categories = []string{"kitchen"}
	f := NewFetcher(model.StoreAmazon, []Item{item}, identity, nil)

	spec := querySpec()
	spec.Keywords = []string{"yoga"}
	spec.Categories = []string{"electronics"}
	spec.BrandsPreferred = []string{"anker"}

	out := f.Fetch(context.Background(), spec)

	// Category and keyword filters would both reject this product; the brand
	// preference overrides them so ranking can decide.
	require.Len(t, out, 1)
	assert.Equal(t, "p_brand", out[0].ID)
	assert.False(t, out[0].KeywordMatched)
}

func TestFetchCategoryAndColorGate(t *testing.T) {
	wrongCategory := catalogItem("p_wrong_cat", 50)
	wrongCategory.Product.Categories = []string{"kitchen"}
	wrongColor := catalogItem("p_wrong_color", 50)
	wrongColor.Product.Categories = []string{"electronics"}
	wrongColor.Product.Colors = []string{"red"}
	match := catalogItem("p_match", 50)
	match.Product.Categories = []string{"electronics"}
	match.Product.Colors = []string{"midnight black"}

	f := NewFetcher(model.StoreAmazon, []Item{wrongCategory, wrongColor, match}, identity, nil)

	spec := querySpec()
	spec.Categories = []string{"Electronics"}
	spec.ColorsPreferred = []string{"Black"}

	out := f.Fetch(context.Background(), spec)

	require.Len(t, out, 1)
	assert.Equal(t, "p_match", out[0].ID)
}

func TestFetchKeywordGateSetsFlag(t *testing.T) {
	titleHit := catalogItem("p_title", 50)
	interestHit := catalogItem("p_interest", 50)
	interestHit.Product.Title = "Massage Gun"
	interestHit.Product.Interests = []string{"earbuds"}
	miss := catalogItem("p_miss", 50)
	miss.Product.Title = "Ceramic Mug"

	f := NewFetcher(model.StoreAmazon, []Item{titleHit, interestHit, miss}, identity, nil)

	spec := querySpec()
	spec.Keywords = []string{"earbuds"}

	out := f.Fetch(context.Background(), spec)

	require.Len(t, out, 2)
	assert.Equal(t, "p_title", out[0].ID)
	assert.True(t, out[0].KeywordMatched)
	assert.Equal(t, "p_interest", out[1].ID)
	assert.True(t, out[1].KeywordMatched)
}

func TestFetchNoKeywordsLeavesFlagUnset(t *testing.T) {
	f := NewFetcher(model.StoreAmazon, []Item{catalogItem("p1", 50)}, identity, nil)

	out := f.Fetch(context.Background(), querySpec())

	require.Len(t, out, 1)
	assert.False(t, out[0].KeywordMatched)
}

func TestFetchRespectsLimit(t *testing.T) {
	items := []Item{
		catalogItem("p1", 50), catalogItem("p2", 50), catalogItem("p3", 50),
	}
	f := NewFetcher(model.StoreAmazon, items, identity, nil)

	spec := querySpec()
	spec.Limit = 2

	out := f.Fetch(context.Background(), spec)

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ID)
	assert.Equal(t, "p2", out[1].ID)
}

func TestFetchDropsInvalidURLs(t *testing.T) {
	badImage := catalogItem("p_bad_image", 50)
	badImage.Product.Image = "http://images.example.com/plain.jpg"
	badAffiliate := catalogItem("p_bad_affiliate", 50)
	badAffiliate.AffiliateBase = "javascript:alert(1)"
	good := catalogItem("p_good", 50)

	f := NewFetcher(model.StoreAmazon, []Item{badImage, badAffiliate, good}, identity, nil)

	out := f.Fetch(context.Background(), querySpec())

	require.Len(t, out, 1)
	assert.Equal(t, "p_good", out[0].ID)
}

func TestAmazonDecorationAppendsTag(t *testing.T) {
	f := NewAmazon("", nil)

	spec := querySpec()
	spec.Price = model.PriceRange{Min: 0, Max: 0, Currency: "USD"}

	out := f.Fetch(context.Background(), spec)
	require.NotEmpty(t, out)

	u, err := url.Parse(out[0].AffiliateURL)
	require.NoError(t, err)
	assert.Equal(t, "trendella-20", u.Query().Get("tag"))
}

func TestAliExpressDecorationUsesConfiguredIDs(t *testing.T) {
	f := NewAliExpress("camp42", "app7", nil)

	spec := querySpec()
	spec.Price = model.PriceRange{Min: 0, Max: 0, Currency: "USD"}

	out := f.Fetch(context.Background(), spec)
	require.NotEmpty(t, out)

	u, err := url.Parse(out[0].AffiliateURL)
	require.NoError(t, err)
	assert.Equal(t, "camp42", u.Query().Get("aff_fcid"))
	assert.Equal(t, "app7", u.Query().Get("aff_fsk"))
	assert.Equal(t, "portals-tool", u.Query().Get("aff_platform"))
}

func TestStoreAccessor(t *testing.T) {
	f := NewShein("", nil)
	assert.Equal(t, model.StoreShein, f.Store())
}
