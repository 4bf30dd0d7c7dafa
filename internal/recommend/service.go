// Package recommend orchestrates one recommendation request end to end:
// spec building, phrase expansion, the store fan-out, dedupe, ranking, and
// the rendering contract handed to the UI.
package recommend

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"trendella-backend/internal/dedupe"
	"trendella-backend/internal/explain"
	"trendella-backend/internal/fetch"
	"trendella-backend/internal/kstream"
	"trendella-backend/internal/marketplace"
	"trendella-backend/internal/model"
	"trendella-backend/internal/ranking"
	"trendella-backend/internal/session"
	"trendella-backend/internal/specbuilder"
)

// Below this many unique products the base spec is fetched once more to top
// up the pool before ranking.
const minPoolSize = 6

// PhraseExpander turns a profile into 1-5 marketplace search phrases.
// Implementations may fail; the service substitutes deterministic phrases.
type PhraseExpander interface {
	ExpandPhrases(ctx context.Context, profile model.RecipientProfile) ([]string, error)
}

// Service runs the recommendation pipeline. expander and events may be nil.
type Service struct {
	builder  *specbuilder.Builder
	registry *fetch.Registry
	expander PhraseExpander
	sessions session.Store
	events   *kstream.Producer
	logger   *slog.Logger
}

// NewService wires the pipeline together.
func NewService(
	builder *specbuilder.Builder,
	registry *fetch.Registry,
	expander PhraseExpander,
	sessions session.Store,
	events *kstream.Producer,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		builder:  builder,
		registry: registry,
		expander: expander,
		sessions: sessions,
		events:   events,
		logger:   logger,
	}
}

// Recommend produces the full rendering contract for one profile. An empty
// product pool is a valid outcome, not an error: the contract still carries
// follow-ups nudging the user to broaden criteria.
func (s *Service) Recommend(ctx context.Context, sessionID string, profile model.RecipientProfile) (model.RenderingContract, error) {
	start := time.Now()

	// The ranker filters against profile.Budget directly, so the min-only
	// repair has to happen before the spec builder's own copy of it.
	if profile.Budget.Max == 0 && profile.Budget.Min > 0 {
		profile.Budget = specbuilder.SanitizeBudget(profile.Budget)
	}

	spec := s.builder.Build(ctx, profile)
	phrases := s.phrases(ctx, profile)
	links := deepLinks(spec.StorePriority, phrases)

	// Fire-and-collect: the fan-out runs to completion even if the caller
	// disconnects, so the cache still gets warmed for the retry.
	fetchCtx := context.WithoutCancel(ctx)

	pool := dedupe.Products(s.fanOut(fetchCtx, spec, phrases))
	if len(pool) < minPoolSize {
		s.logger.Info("thin product pool, topping up from base spec",
			slog.Int("count", len(pool)))
		base := s.fanOut(fetchCtx, spec, nil)
		pool = dedupe.Products(append(pool, base...))
	}

	ranked := ranking.Rank(profile, pool)

	if err := s.sessions.Remember(ctx, sessionID, ranked); err != nil {
		s.logger.Warn("failed to remember served products", slog.Any("error", err))
	}

	filled := profile.IsComplete()
	nextAction := "collect_missing_profile"
	if filled {
		nextAction = "offer_refinements"
	}

	contract := model.RenderingContract{
		Meta: model.RenderingMeta{
			ProfileFilled: filled,
			NextAction:    nextAction,
			GeminiLinks:   links,
		},
		Explanations:        explain.Explanations(profile, ranked),
		FollowUpSuggestions: explain.FollowUps(profile, ranked),
		ProductsRanked:      productIDs(ranked),
		Products:            ranked,
	}

	s.publishServed(fetchCtx, sessionID, filled, ranked, phrases, time.Since(start))

	return contract, nil
}

// phrases returns the generative expansion, or the deterministic single
// phrase when the expander is absent or misbehaves.
func (s *Service) phrases(ctx context.Context, profile model.RecipientProfile) []string {
	if s.expander != nil {
		phrases, err := s.expander.ExpandPhrases(ctx, profile)
		if err == nil && len(phrases) > 0 {
			return phrases
		}
		if err != nil {
			s.logger.Warn("phrase expansion failed, using fallback phrase", slog.Any("error", err))
		}
	}
	return fallbackPhrases(profile)
}

func fallbackPhrases(profile model.RecipientProfile) []string {
	var parts []string
	for _, interest := range profile.Interests {
		if trimmed := strings.TrimSpace(interest); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return []string{"gift ideas"}
	}
	return []string{strings.Join(parts, " ")}
}

// fanOut issues one fetch per store per phrase through a bounded worker pool
// and merges the results in completion order. A nil phrases slice means one
// pass with the base spec's own keywords.
func (s *Service) fanOut(ctx context.Context, spec model.ProductQuerySpec, phrases []string) []model.NormalizedProduct {
	type job struct {
		store model.Store
		spec  model.ProductQuerySpec
	}

	var jobList []job
	if len(phrases) == 0 {
		for _, store := range spec.StorePriority {
			jobList = append(jobList, job{store: store, spec: spec})
		}
	} else {
		for _, phrase := range phrases {
			phraseSpec := spec
			phraseSpec.Keywords = strings.Fields(phrase)
			for _, store := range spec.StorePriority {
				jobList = append(jobList, job{store: store, spec: phraseSpec})
			}
		}
	}
	if len(jobList) == 0 {
		return nil
	}

	jobs := make(chan job)
	var mu sync.Mutex
	var collected []model.NormalizedProduct
	var wg sync.WaitGroup

	for i := 0; i < workerCount(len(jobList)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				fetcher, ok := s.registry.Lookup(j.store)
				if !ok {
					continue
				}
				products := fetcher.Fetch(ctx, j.spec)
				if len(products) == 0 {
					continue
				}
				mu.Lock()
				collected = append(collected, products...)
				mu.Unlock()
			}
		}()
	}

	for _, j := range jobList {
		jobs <- j
	}
	close(jobs)
	wg.Wait()

	return collected
}

func workerCount(n int) int {
	if n <= 0 {
		return 1
	}
	if n < 4 {
		return n
	}
	if n > 16 {
		return 16
	}
	return n
}

// deepLinks records one marketplace search link per store per phrase,
// deduplicated by store and url, so the UI has somewhere to send the user
// even when live fetches come back empty.
func deepLinks(stores []model.Store, phrases []string) []model.GeminiLinkSuggestion {
	seen := make(map[string]bool)
	var links []model.GeminiLinkSuggestion
	for _, phrase := range phrases {
		for _, store := range stores {
			url := marketplace.SearchURL(store, phrase)
			if url == "" {
				continue
			}
			key := string(store) + "::" + url
			if seen[key] {
				continue
			}
			seen[key] = true
			links = append(links, model.GeminiLinkSuggestion{Store: store, Query: phrase, URL: url})
		}
	}
	return links
}

func productIDs(products []model.NormalizedProduct) []string {
	ids := make([]string, 0, len(products))
	for _, product := range products {
		ids = append(ids, product.ID)
	}
	return ids
}

func (s *Service) publishServed(
	ctx context.Context,
	sessionID string,
	filled bool,
	ranked []model.NormalizedProduct,
	phrases []string,
	elapsed time.Duration,
) {
	if s.events == nil {
		return
	}

	storeSet := make(map[model.Store]bool)
	var stores []string
	for _, product := range ranked {
		if !storeSet[product.Store] {
			storeSet[product.Store] = true
			stores = append(stores, string(product.Store))
		}
	}

	event := model.RecommendationServed{
		SessionID:      sessionID,
		ProfileFilled:  filled,
		ProductCount:   len(ranked),
		Stores:         stores,
		SearchPhrases:  phrases,
		DurationMillis: elapsed.Milliseconds(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.events.PublishRecommendationServed(ctx, event); err != nil {
		s.logger.Warn("failed to publish served event", slog.Any("error", err))
	}
}
