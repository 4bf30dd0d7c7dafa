// Package ranking orders the merged product pool for one request. It is a
// pure function of (profile, products): hard constraint filter, additive
// scoring, then a category-diversity re-rank.
package ranking

import (
	"math"
	"sort"
	"strings"

	"trendella-backend/internal/model"
)

const (
	maxResults = 12

	// Fetchers already applied the same tolerance; the filter here also
	// catches products merged from sources that bypass it (cache top-ups,
	// phrase fan-out with a different budget).
	budgetTolerance = 0.10

	diversityPenalty = 0.15

	badgeFastShipping = "fast_shipping"
	badgeEcoFriendly  = "eco_friendly"
)

// Rank filters, scores, and diversity-adjusts products, returning at most 12
// ordered by adjusted score. Ties keep the input order.
func Rank(profile model.RecipientProfile, products []model.NormalizedProduct) []model.NormalizedProduct {
	kept := hardFilter(profile, products)
	if len(kept) == 0 {
		return kept
	}

	type scored struct {
		product  model.NormalizedProduct
		score    float64
		adjusted float64
		index    int
	}

	pool := make([]scored, len(kept))
	for i, product := range kept {
		pool[i] = scored{product: product, score: score(profile, product), index: i}
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].score > pool[j].score })

	// Walk in score order, charging each product for categories already used
	// by products placed before it. No hard cap: a category with no
	// competition can still fill the top.
	usage := make(map[string]int)
	for i := range pool {
		penalty := 0.0
		for _, category := range pool[i].product.Categories {
			penalty += diversityPenalty * float64(usage[strings.ToLower(category)])
		}
		pool[i].adjusted = pool[i].score - penalty
		for _, category := range pool[i].product.Categories {
			usage[strings.ToLower(category)]++
		}
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].adjusted > pool[j].adjusted })

	limit := len(pool)
	if limit > maxResults {
		limit = maxResults
	}
	out := make([]model.NormalizedProduct, 0, limit)
	for _, entry := range pool[:limit] {
		out = append(out, entry.product)
	}
	return out
}

func hardFilter(profile model.RecipientProfile, products []model.NormalizedProduct) []model.NormalizedProduct {
	excludes := lowerSet(profile.Constraints.CategoryExcludes)
	includes := lowerSet(profile.Constraints.CategoryIncludes)

	kept := make([]model.NormalizedProduct, 0, len(products))
	for _, product := range products {
		if intersects(product.Categories, excludes) {
			continue
		}
		if len(includes) > 0 && !intersects(product.Categories, includes) {
			continue
		}
		price := product.Price.Value
		if profile.Budget.Max > 0 && price > profile.Budget.Max*(1+budgetTolerance) {
			continue
		}
		if profile.Budget.Min > 0 && price < profile.Budget.Min*(1-budgetTolerance) {
			continue
		}
		kept = append(kept, product)
	}
	return kept
}

func score(profile model.RecipientProfile, product model.NormalizedProduct) float64 {
	total := 0.0

	if matchesInterest(profile.Interests, product.Interests) {
		total += 1
	}
	if matchesBrand(profile.FavoriteBrands, product) {
		total += 0.5
	}

	total += priceFit(profile.Budget, product.Price.Value)
	total += product.Rating.Value / 5

	if profile.Constraints.ShippingDaysMax != nil && hasBadge(product, badgeFastShipping) {
		total += 0.4
	}
	if hasBadge(product, badgeEcoFriendly) && lowerSet(profile.Constraints.CategoryExcludes)["plastic"] {
		total += 0.3
	}
	if product.KeywordMatched {
		total += 0.4
	}
	return total
}

// priceFit rewards proximity to the budget midpoint. With no ceiling there is
// no midpoint to measure against, so every product gets a flat half credit.
func priceFit(budget model.Budget, price float64) float64 {
	if budget.Max <= 0 {
		return 0.5
	}
	midpoint := (budget.Min + budget.Max) / 2
	if budget.Min <= 0 {
		midpoint = budget.Max
	}
	tolerance := math.Max(0.3*midpoint, 20)
	return math.Max(0, 1-math.Abs(price-midpoint)/tolerance)
}

func matchesInterest(profileInterests, productInterests []string) bool {
	if len(profileInterests) == 0 || len(productInterests) == 0 {
		return false
	}
	wanted := lowerSet(profileInterests)
	for _, tag := range productInterests {
		if wanted[strings.ToLower(tag)] {
			return true
		}
	}
	return false
}

func matchesBrand(brands []string, product model.NormalizedProduct) bool {
	title := strings.ToLower(product.Title)
	for _, brand := range brands {
		needle := strings.ToLower(strings.TrimSpace(brand))
		if needle == "" {
			continue
		}
		if strings.Contains(title, needle) {
			return true
		}
		for _, productBrand := range product.Brands {
			if strings.Contains(strings.ToLower(productBrand), needle) {
				return true
			}
		}
	}
	return false
}

func hasBadge(product model.NormalizedProduct, badge string) bool {
	for _, b := range product.Badges {
		if b == badge {
			return true
		}
	}
	return false
}

func intersects(values []string, set map[string]bool) bool {
	for _, value := range values {
		if set[strings.ToLower(value)] {
			return true
		}
	}
	return false
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, value := range values {
		value = strings.ToLower(strings.TrimSpace(value))
		if value != "" {
			set[value] = true
		}
	}
	return set
}
