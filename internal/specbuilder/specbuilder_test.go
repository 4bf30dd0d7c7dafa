package specbuilder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendella-backend/internal/model"
)

func TestSanitizeBudget(t *testing.T) {
	cases := []struct {
		name string
		in   model.Budget
		want model.Budget
	}{
		{
			name: "empty budget gets the default band",
			in:   model.Budget{},
			want: model.Budget{Min: 25, Max: 150, Currency: "USD"},
		},
		{
			name: "missing max derived from min via 1.5x",
			in:   model.Budget{Min: 200, Currency: "USD"},
			want: model.Budget{Min: 200, Max: 300, Currency: "USD"},
		},
		{
			name: "missing max derived from small min via min+50",
			in:   model.Budget{Min: 20, Currency: "USD"},
			want: model.Budget{Min: 20, Max: 70, Currency: "USD"},
		},
		{
			name: "inverted bounds are swapped",
			in:   model.Budget{Min: 80, Max: 30, Currency: "EUR"},
			want: model.Budget{Min: 30, Max: 80, Currency: "EUR"},
		},
		{
			name: "negative values clamped before repair",
			in:   model.Budget{Min: -5, Max: -5},
			want: model.Budget{Min: 25, Max: 150, Currency: "USD"},
		},
		{
			name: "well-formed budget untouched",
			in:   model.Budget{Min: 10, Max: 40, Currency: "GBP"},
			want: model.Budget{Min: 10, Max: 40, Currency: "GBP"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeBudget(tc.in))
		})
	}
}

func TestSanitizeBudgetIdempotent(t *testing.T) {
	inputs := []model.Budget{
		{},
		{Min: 20},
		{Max: 90},
		{Min: 90, Max: 20},
		{Min: -1, Max: 500},
		{Min: 25, Max: 150, Currency: "USD"},
	}
	for _, in := range inputs {
		once := SanitizeBudget(in)
		assert.Equal(t, once, SanitizeBudget(once), "input %+v", in)
	}
}

func TestDeterministicSpec(t *testing.T) {
	builder := NewBuilder(nil, nil)
	profile := model.RecipientProfile{
		Occasion:       "Birthday",
		Relationship:   "Friend",
		Budget:         model.Budget{Min: 20, Max: 100, Currency: "USD"},
		Interests:      []string{"Tech", "fitness", "chess"},
		FavoriteColor:  "Black",
		FavoriteBrands: []string{"Anker"},
	}

	spec := builder.Build(context.Background(), profile)

	assert.Equal(t, []string{"tech", "fitness", "chess", "anker"}, spec.Keywords)
	assert.Equal(t,
		[]string{"electronics", "tech", "gadgets", "fitness", "health", "recovery", "chess", "birthday", "friend"},
		spec.Categories)
	assert.Equal(t, model.PriceRange{Min: 20, Max: 100, Currency: "USD"}, spec.Price)
	assert.Equal(t, []string{"anker"}, spec.BrandsPreferred)
	assert.Equal(t, []string{"black"}, spec.ColorsPreferred)
	assert.Equal(t, model.AllStores, spec.StorePriority)
	assert.Equal(t, 24, spec.Limit)
	assert.Equal(t, model.SortRelevance, spec.Sort)
}

func TestKeywordsDeduplicated(t *testing.T) {
	builder := NewBuilder(nil, nil)
	profile := model.RecipientProfile{
		Interests:      []string{"Lego", "lego "},
		FavoriteBrands: []string{"LEGO"},
	}
	spec := builder.Build(context.Background(), profile)
	assert.Equal(t, []string{"lego"}, spec.Keywords)
}

func TestLowBudgetStorePriority(t *testing.T) {
	builder := NewBuilder(nil, nil)
	profile := model.RecipientProfile{
		Budget:    model.Budget{Min: 5, Max: 40, Currency: "USD"},
		Interests: []string{"plants"},
	}

	spec := builder.Build(context.Background(), profile)

	require.Len(t, spec.StorePriority, len(model.AllStores))
	assert.Equal(t,
		[]model.Store{
			model.StoreAliExpress, model.StoreShein,
			model.StoreAmazon, model.StoreEbay, model.StoreEtsy, model.StoreBestBuy,
		},
		spec.StorePriority)
}

type stubSuggester struct {
	spec model.ProductQuerySpec
	err  error
}

func (s stubSuggester) SuggestSpec(context.Context, model.RecipientProfile) (model.ProductQuerySpec, error) {
	return s.spec, s.err
}

func TestSuggestedSpecAcceptedWhenValid(t *testing.T) {
	suggested := model.ProductQuerySpec{
		Keywords:      []string{"espresso"},
		Categories:    []string{"kitchen"},
		Price:         model.PriceRange{Min: 30, Max: 120, Currency: "USD"},
		StorePriority: []model.Store{model.StoreAmazon},
		Limit:         12,
		Sort:          model.SortRelevance,
	}
	builder := NewBuilder(stubSuggester{spec: suggested}, nil)

	spec := builder.Build(context.Background(), model.RecipientProfile{Interests: []string{"coffee"}})
	assert.Equal(t, suggested, spec)
}

func TestSuggesterErrorFallsBack(t *testing.T) {
	builder := NewBuilder(stubSuggester{err: errors.New("model unavailable")}, nil)

	spec := builder.Build(context.Background(), model.RecipientProfile{Interests: []string{"coffee"}})
	assert.Equal(t, []string{"coffee"}, spec.Keywords)
	assert.Equal(t, 24, spec.Limit)
}

func TestMalformedSuggestionFallsBack(t *testing.T) {
	// Limit over the schema maximum must be rejected outright, not clamped.
	bad := model.ProductQuerySpec{
		Keywords:      []string{"espresso"},
		Price:         model.PriceRange{Min: 30, Max: 120, Currency: "USD"},
		StorePriority: []model.Store{model.StoreAmazon},
		Limit:         500,
		Sort:          model.SortRelevance,
	}
	builder := NewBuilder(stubSuggester{spec: bad}, nil)

	spec := builder.Build(context.Background(), model.RecipientProfile{Interests: []string{"coffee"}})
	assert.Equal(t, 24, spec.Limit)
	assert.Equal(t, model.AllStores, spec.StorePriority)
}
