// Package gemini wraps the Gemini API behind the pipeline's two generative
// capabilities: proposing a full query spec and expanding a profile into
// marketplace search phrases. Callers treat both as best-effort; every error
// path here has a deterministic fallback upstream.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"trendella-backend/internal/config"
	"trendella-backend/internal/model"
)

// ErrNotConfigured is returned by NewClient when no API key is present. The
// caller wires deterministic behavior instead of failing startup.
var ErrNotConfigured = errors.New("gemini: api key not configured")

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 8 * time.Second

	maxPhrases = 5
)

// Client is a thin Gemini wrapper. Safe for concurrent use.
type Client struct {
	inner   *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewClient builds a Gemini client from config. Returns ErrNotConfigured when
// the key is absent so callers can degrade instead of aborting.
func NewClient(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, ErrNotConfigured
	}
	if logger == nil {
		logger = slog.Default()
	}

	inner, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	modelName := cfg.GeminiModel
	if modelName == "" {
		modelName = defaultModel
	}
	timeout := cfg.GeminiTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{inner: inner, model: modelName, timeout: timeout, logger: logger}, nil
}

// SuggestSpec asks the model for a complete ProductQuerySpec. The caller
// schema-validates the result; this method only guarantees parseable JSON.
func (c *Client) SuggestSpec(ctx context.Context, profile model.RecipientProfile) (model.ProductQuerySpec, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return model.ProductQuerySpec{}, fmt.Errorf("marshal profile: %w", err)
	}

	prompt := `You build product search specs for a gift recommendation engine.
Given the recipient profile below, respond with ONLY a JSON object with these fields:
keywords (array of lowercase search tokens), categories (array of lowercase category tags),
price {min, max, currency}, brands_preferred (array, lowercase), colors_preferred (array, lowercase),
store_priority (array drawn from: amazon, aliexpress, shein, ebay, etsy, bestbuy),
limit (integer, 1-50), sort (one of: relevance, price_low_high, price_high_low).

Profile:
` + string(profileJSON)

	text, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return model.ProductQuerySpec{}, err
	}

	var spec model.ProductQuerySpec
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		return model.ProductQuerySpec{}, fmt.Errorf("parse suggested spec: %w (response: %s)", err, text)
	}
	return spec, nil
}

// ExpandPhrases asks the model for 1-5 short marketplace search phrases for
// the profile. Returns an error when the output is empty or unparseable.
func (c *Client) ExpandPhrases(ctx context.Context, profile model.RecipientProfile) ([]string, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	prompt := `You generate marketplace search phrases for gift shopping.
Given the recipient profile below, respond with ONLY a JSON object:
{"phrases": ["...", "..."]}
with 1 to 5 short phrases (2-5 words each) a shopper would type into a marketplace search box.

Profile:
` + string(profileJSON)

	text, err := c.generateJSON(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Phrases []string `json:"phrases"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("parse phrases: %w (response: %s)", err, text)
	}

	phrases := make([]string, 0, maxPhrases)
	for _, phrase := range parsed.Phrases {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			continue
		}
		phrases = append(phrases, phrase)
		if len(phrases) == maxPhrases {
			break
		}
	}
	if len(phrases) == 0 {
		return nil, errors.New("gemini returned no usable phrases")
	}
	return phrases, nil
}

func (c *Client) generateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.inner.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("gemini returned no content")
	}

	var builder strings.Builder
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			builder.WriteString(part.Text)
		}
	}

	text := stripCodeFence(builder.String())
	if text == "" {
		return "", errors.New("gemini returned empty text")
	}
	return text, nil
}

// stripCodeFence removes a markdown code fence the model sometimes wraps JSON
// in despite the response MIME type.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "`")
	text = strings.TrimPrefix(text, "json")
	return strings.TrimSpace(text)
}
