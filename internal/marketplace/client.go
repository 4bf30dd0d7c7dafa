// Package marketplace contains the live-API product sources. Every client
// obeys the fetcher contract: a query spec in, normalized products out, and
// any upstream failure absorbed into an empty result with a logged warning.
package marketplace

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"trendella-backend/internal/model"
)

const requestTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// withinBudget applies the ±10% tolerance band from the spec's price range.
func withinBudget(price float64, spec model.ProductQuerySpec) bool {
	if spec.Price.Min > 0 && price < spec.Price.Min*0.9 {
		return false
	}
	if spec.Price.Max > 0 && price > spec.Price.Max*1.1 {
		return false
	}
	return true
}

func truncate(products []model.NormalizedProduct, limit int) []model.NormalizedProduct {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}

// clipRunes shortens s to at most n runes; a byte index could split a
// multi-byte character.
func clipRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
