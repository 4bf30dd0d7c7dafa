package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendella-backend/internal/model"
)

func TestProductsKeepsFirstOccurrence(t *testing.T) {
	in := []model.NormalizedProduct{
		{ID: "a", Title: "first a"},
		{ID: "b", Title: "first b"},
		{ID: "a", Title: "second a"},
		{ID: "c", Title: "first c"},
		{ID: "b", Title: "second b"},
	}

	out := Products(in)

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "first a", out[0].Title)
	assert.Equal(t, "b", out[1].ID)
	assert.Equal(t, "c", out[2].ID)
}

func TestProductsNoDuplicates(t *testing.T) {
	in := []model.NormalizedProduct{{ID: "a"}, {ID: "b"}}
	out := Products(in)
	assert.Equal(t, in, out)
}

func TestProductsEmpty(t *testing.T) {
	assert.Empty(t, Products(nil))
	assert.Empty(t, Products([]model.NormalizedProduct{}))
}
