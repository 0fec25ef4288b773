// Package catalog loads media pages from the media API and applies the
// presentation-side concerns the client itself leaves out: the failure
// policy for list pages, local filtering/sorting and concurrent batches.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/mediashelf/filter"
	"github.com/s0up4200/mediashelf/mediaapi"
)

// ErrNotFound is returned by Load under PolicyNotFound when the media list
// cannot be produced
var ErrNotFound = errors.New("media not found")

// FailurePolicy decides what Load does when the list request fails
type FailurePolicy string

const (
	// PolicyNotFound turns any failure into ErrNotFound
	PolicyNotFound FailurePolicy = "not_found"
	// PolicyEmpty substitutes an empty page and logs a warning
	PolicyEmpty FailurePolicy = "empty"
)

// ParseFailurePolicy parses a policy name; an empty string yields PolicyNotFound
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch FailurePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyNotFound:
		return PolicyNotFound, nil
	case PolicyEmpty:
		return PolicyEmpty, nil
	}
	return "", fmt.Errorf("invalid failure policy %q (must be '%s' or '%s')", s, PolicyNotFound, PolicyEmpty)
}

// Option configures a Catalog
type Option func(*Catalog)

// WithFailurePolicy sets the list failure policy
func WithFailurePolicy(policy FailurePolicy) Option {
	return func(c *Catalog) {
		c.policy = policy
	}
}

// WithCompiler sets the filter compiler used by Refine
func WithCompiler(compiler filter.Compiler) Option {
	return func(c *Catalog) {
		c.compiler = compiler
	}
}

// WithConcurrency limits how many requests a batch runs at once
func WithConcurrency(n int) Option {
	return func(c *Catalog) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// Catalog wraps a media API with page loading and batch helpers
type Catalog struct {
	api         mediaapi.API
	policy      FailurePolicy
	compiler    filter.Compiler
	concurrency int
	logger      zerolog.Logger
}

// New creates a Catalog over api
func New(api mediaapi.API, logger zerolog.Logger, opts ...Option) *Catalog {
	c := &Catalog{
		api:         api,
		policy:      PolicyNotFound,
		compiler:    filter.NewExprCompiler(),
		concurrency: DefaultConcurrency,
		logger:      logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Policy returns the configured failure policy
func (c *Catalog) Policy() FailurePolicy {
	return c.policy
}

// Page is one loaded media list
type Page struct {
	Items []map[string]any
}

// Len returns the number of items
func (p *Page) Len() int {
	return len(p.Items)
}

// Typed decodes the raw items into Media values
func (p *Page) Typed() ([]mediaapi.Media, error) {
	media := make([]mediaapi.Media, 0, len(p.Items))
	for i, item := range p.Items {
		var m mediaapi.Media
		if err := mediaapi.Decode(item, &m); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		media = append(media, m)
	}
	return media, nil
}

// Load lists media and extracts the items from the response envelope
func (c *Catalog) Load(ctx context.Context, query *mediaapi.QueryOptions) (*Page, error) {
	doc, err := c.api.ListMedia(ctx, query)
	if err == nil {
		var items []map[string]any
		items, err = extractItems(doc)
		if err == nil {
			c.logger.Debug().Int("count", len(items)).Msg("Loaded media page")
			return &Page{Items: items}, nil
		}
	}

	if c.policy == PolicyEmpty {
		c.logger.Warn().Err(err).Msg("Failed to load media list, showing an empty page")
		return &Page{Items: []map[string]any{}}, nil
	}

	return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
}

// extractItems accepts either {"media": [...]} or a bare array
func extractItems(doc any) ([]map[string]any, error) {
	var raw []any
	switch v := doc.(type) {
	case map[string]any:
		media, ok := v["media"]
		if !ok || media == nil {
			return nil, errors.New("response has no media field")
		}
		list, ok := media.([]any)
		if !ok {
			return nil, fmt.Errorf("media field is %T, not a list", media)
		}
		raw = list
	case []any:
		raw = v
	default:
		return nil, fmt.Errorf("unexpected list response of type %T", doc)
	}

	items := make([]map[string]any, 0, len(raw))
	for i, entry := range raw {
		item, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("media item %d is %T, not an object", i, entry)
		}
		items = append(items, item)
	}
	return items, nil
}
