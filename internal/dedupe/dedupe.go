// Package dedupe collapses repeated product identities after overlapping
// fetch passes.
package dedupe

import "trendella-backend/internal/model"

// Products returns the input with duplicate ids removed, keeping the first
// occurrence and preserving order. Pure function, O(n).
func Products(products []model.NormalizedProduct) []model.NormalizedProduct {
	seen := make(map[string]struct{}, len(products))
	out := make([]model.NormalizedProduct, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
