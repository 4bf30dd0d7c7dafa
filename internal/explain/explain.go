// Package explain produces the natural-language layer of a recommendation:
// a one-sentence justification per ranked product and up to three follow-up
// refinement suggestions.
package explain

import (
	"fmt"
	"math"
	"strings"

	"trendella-backend/internal/model"
)

const maxFollowUps = 3

// Explanations builds one justification per product, in product order. A
// product with no applicable reason falls back to a generic one.
func Explanations(profile model.RecipientProfile, products []model.NormalizedProduct) []model.Explanation {
	out := make([]model.Explanation, 0, len(products))
	for _, product := range products {
		out = append(out, model.Explanation{
			ProductID: product.ID,
			Why:       fmt.Sprintf("Selected because it %s.", reasonFor(profile, product)),
		})
	}
	return out
}

func reasonFor(profile model.RecipientProfile, product model.NormalizedProduct) string {
	var reasons []string

	if overlap := interestOverlap(profile.Interests, product.Interests); len(overlap) > 0 {
		reasons = append(reasons, "matches their interest in "+strings.Join(overlap, ", "))
	}

	if brand := firstBrandMatch(profile.FavoriteBrands, product); brand != "" {
		reasons = append(reasons, "features favorite brand "+brand)
	}

	if profile.FavoriteColor != "" && hasColor(product.Colors, profile.FavoriteColor) {
		reasons = append(reasons, "comes in their preferred "+profile.FavoriteColor+" hue")
	}

	if profile.Budget.Max > 0 && product.Price.Value <= profile.Budget.Max*1.05 {
		reasons = append(reasons, "stays within budget")
	}

	if profile.Constraints.ShippingDaysMax != nil && hasBadge(product, "fast_shipping") {
		reasons = append(reasons, "offers quick shipping")
	}

	if len(reasons) == 0 {
		return "is a well-reviewed crowd pleaser"
	}
	return strings.Join(reasons, ", ")
}

// FollowUps assembles up to three refinement suggestions from the fixed
// candidate pool. Insertion order decides which survive truncation; the set
// semantics only deduplicate exact repeats.
func FollowUps(profile model.RecipientProfile, products []model.NormalizedProduct) []string {
	suggestions := make([]string, 0, 6)
	seen := make(map[string]bool)
	add := func(s string) {
		if seen[s] {
			return
		}
		seen[s] = true
		suggestions = append(suggestions, s)
	}

	if profile.Budget.Max > 0 {
		add(fmt.Sprintf("Tighten the budget to under $%d?", int(math.Round(profile.Budget.Max*0.8))))
		add(fmt.Sprintf("Explore splurge options up to $%d?", int(math.Round(profile.Budget.Max*1.2))))
	} else {
		add("Share a budget range so I can tailor picks.")
	}

	if profile.FavoriteColor != "" {
		add(fmt.Sprintf("Prefer everything in %s?", profile.FavoriteColor))
	} else {
		add("Call out a favorite color to refine the palette.")
	}

	if !anyHasBadge(products, "eco_friendly") {
		add("Want sustainable or eco-conscious picks only?")
	}

	add("Need faster shipping or a specific delivery window?")

	if len(suggestions) > maxFollowUps {
		suggestions = suggestions[:maxFollowUps]
	}
	return suggestions
}

func interestOverlap(profileInterests, productInterests []string) []string {
	if len(profileInterests) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(profileInterests))
	for _, interest := range profileInterests {
		wanted[strings.ToLower(strings.TrimSpace(interest))] = true
	}
	var overlap []string
	for _, interest := range productInterests {
		if wanted[strings.ToLower(strings.TrimSpace(interest))] {
			overlap = append(overlap, interest)
		}
	}
	return overlap
}

func firstBrandMatch(brands []string, product model.NormalizedProduct) string {
	candidates := make([]string, 0, len(product.Brands)+1)
	for _, brand := range product.Brands {
		candidates = append(candidates, strings.ToLower(brand))
	}
	candidates = append(candidates, strings.ToLower(product.Title))

	for _, brand := range brands {
		needle := strings.ToLower(brand)
		for _, candidate := range candidates {
			if strings.Contains(candidate, needle) {
				return brand
			}
		}
	}
	return ""
}

func hasColor(colors []string, favorite string) bool {
	want := strings.ToLower(strings.TrimSpace(favorite))
	for _, color := range colors {
		if strings.ToLower(color) == want {
			return true
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

func anyHasBadge(products []model.NormalizedProduct, badge string) bool {
	for _, product := range products {
		if hasBadge(product, badge) {
			return true
		}
	}
	return false
}
