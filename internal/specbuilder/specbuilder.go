// Package specbuilder turns a recipient profile into a normalized product
// query spec. A generative suggester may propose the whole spec; its output is
// schema-validated and any deviation falls back to the deterministic rules.
package specbuilder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"trendella-backend/internal/model"
)

// go-playground/validator/v10: gates the untrusted suggester output against
// the ProductQuerySpec struct tags before it is allowed to drive fetching.
var validate = validator.New()

const (
	defaultLimit = 24

	// Budget band applied when the profile carries no budget at all.
	defaultBudgetMin = 25
	defaultBudgetMax = 150

	// At or below this max, cheaper stores are prioritized.
	lowBudgetThreshold = 60
)

// interestCategoryMap folds well-known interest tokens into marketplace
// category tags. Unmapped interests pass through as their own category.
var interestCategoryMap = map[string][]string{
	"fitness":     {"fitness", "health", "recovery"},
	"wellness":    {"wellness", "health"},
	"travel":      {"travel", "bags", "accessories"},
	"tech":        {"electronics", "tech", "gadgets"},
	"technology":  {"electronics", "tech", "gadgets"},
	"electronics": {"electronics", "tech", "gadgets"},
	"gadgets":     {"electronics", "tech", "gadgets"},
	"photography": {"electronics", "cameras", "creative"},
	"plants":      {"home", "decor", "plants"},
	"decor":       {"home", "decor"},
	"fashion":     {"fashion"},
	"beauty":      {"beauty", "self_care"},
	"gaming":      {"electronics", "gaming"},
	"cooking":     {"kitchen"},
	"coffee":      {"kitchen", "tech"},
}

// lowBudgetStores are the marketplaces with lower average price points.
var lowBudgetStores = map[model.Store]bool{
	model.StoreAliExpress: true,
	model.StoreShein:      true,
}

// SpecSuggester proposes a complete query spec for a profile. Implementations
// are treated as untrusted; errors and malformed specs trigger the
// deterministic path.
type SpecSuggester interface {
	SuggestSpec(ctx context.Context, profile model.RecipientProfile) (model.ProductQuerySpec, error)
}

// Builder derives query specs from profiles. The zero suggester is valid and
// means "always deterministic".
type Builder struct {
	suggester SpecSuggester
	logger    *slog.Logger
}

// NewBuilder creates a Builder. suggester may be nil.
func NewBuilder(suggester SpecSuggester, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{suggester: suggester, logger: logger}
}

// Build never fails: on any suggester error or schema violation it silently
// substitutes the deterministic spec.
func (b *Builder) Build(ctx context.Context, profile model.RecipientProfile) model.ProductQuerySpec {
	if b.suggester != nil {
		spec, err := b.suggester.SuggestSpec(ctx, profile)
		if err == nil {
			if verr := validate.Struct(spec); verr == nil {
				return spec
			} else {
				b.logger.Warn("suggested spec failed schema validation, using deterministic spec",
					slog.Any("error", verr))
			}
		} else {
			b.logger.Warn("spec suggestion failed, using deterministic spec", slog.Any("error", err))
		}
	}
	return b.deterministic(profile)
}

func (b *Builder) deterministic(profile model.RecipientProfile) model.ProductQuerySpec {
	budget := SanitizeBudget(profile.Budget)

	var colors []string
	if profile.FavoriteColor != "" {
		colors = []string{strings.ToLower(profile.FavoriteColor)}
	}

	brands := make([]string, 0, len(profile.FavoriteBrands))
	for _, brand := range profile.FavoriteBrands {
		brands = append(brands, strings.ToLower(brand))
	}

	return model.ProductQuerySpec{
		Keywords:        inferKeywords(profile),
		Categories:      inferCategories(profile),
		Price:           model.PriceRange{Min: budget.Min, Max: budget.Max, Currency: budget.Currency},
		BrandsPreferred: brands,
		ColorsPreferred: colors,
		StorePriority:   storePriority(budget.Max),
		Limit:           defaultLimit,
		Sort:            model.SortRelevance,
	}
}

// SanitizeBudget repairs a budget band: an empty budget becomes a moderate
// default, a missing max is derived from min, and inverted bounds are
// swapped. Idempotent.
func SanitizeBudget(budget model.Budget) model.Budget {
	out := budget
	if out.Currency == "" {
		out.Currency = "USD"
	}
	if out.Min < 0 {
		out.Min = 0
	}
	if out.Max < 0 {
		out.Max = 0
	}

	switch {
	case out.Min == 0 && out.Max == 0:
		out.Min = defaultBudgetMin
		out.Max = defaultBudgetMax
	case out.Max == 0:
		derived := out.Min * 1.5
		if alt := out.Min + 50; alt > derived {
			derived = alt
		}
		out.Max = derived
	case out.Min > out.Max:
		out.Min, out.Max = out.Max, out.Min
	}
	return out
}

// inferKeywords lower-cases the union of interests and favorite brands.
// Occasion, relationship, and color are deliberately excluded: they produce
// noisy marketplace search terms.
func inferKeywords(profile model.RecipientProfile) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(profile.Interests)+len(profile.FavoriteBrands))
	add := func(value string) {
		lower := strings.ToLower(strings.TrimSpace(value))
		if lower == "" || seen[lower] {
			return
		}
		seen[lower] = true
		keywords = append(keywords, lower)
	}
	for _, interest := range profile.Interests {
		add(interest)
	}
	for _, brand := range profile.FavoriteBrands {
		add(brand)
	}
	return keywords
}

// inferCategories maps interests through the category table and folds in
// occasion and relationship as extra hints.
func inferCategories(profile model.RecipientProfile) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0, len(profile.Interests)*2+2)
	add := func(value string) {
		lower := strings.ToLower(strings.TrimSpace(value))
		if lower == "" || seen[lower] {
			return
		}
		seen[lower] = true
		categories = append(categories, lower)
	}

	for _, interestRaw := range profile.Interests {
		interest := strings.ToLower(strings.TrimSpace(interestRaw))
		if mapped, ok := interestCategoryMap[interest]; ok {
			for _, category := range mapped {
				add(category)
			}
		} else {
			add(interest)
		}
	}
	add(profile.Occasion)
	add(profile.Relationship)
	return categories
}

// storePriority is the default ordering, with the cheaper stores moved ahead
// (stable partial reorder) once the budget ceiling is low.
func storePriority(budgetMax float64) []model.Store {
	if budgetMax > lowBudgetThreshold {
		return append([]model.Store(nil), model.AllStores...)
	}
	ordered := make([]model.Store, 0, len(model.AllStores))
	for _, store := range model.AllStores {
		if lowBudgetStores[store] {
			ordered = append(ordered, store)
		}
	}
	for _, store := range model.AllStores {
		if !lowBudgetStores[store] {
			ordered = append(ordered, store)
		}
	}
	return ordered
}
