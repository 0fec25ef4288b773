package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the number of in-flight batch requests
const DefaultConcurrency = 5

// ItemResult is the outcome of one request in a batch
type ItemResult struct {
	ID  string
	Doc any
	Err error
}

// BatchResult contains the results of a batch, in input order
type BatchResult struct {
	Results []ItemResult
}

// Failed returns the results that carry an error
func (r BatchResult) Failed() []ItemResult {
	var failed []ItemResult
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// Succeeded returns the number of successful requests
func (r BatchResult) Succeeded() int {
	return len(r.Results) - len(r.Failed())
}

// Err summarizes failures, nil when every request succeeded
func (r BatchResult) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	if len(failed) == 1 {
		return fmt.Errorf("%s: %w", failed[0].ID, failed[0].Err)
	}
	return fmt.Errorf("%d of %d requests failed", len(failed), len(r.Results))
}

// GetMany fetches several media items concurrently
func (c *Catalog) GetMany(ctx context.Context, ids []string) BatchResult {
	return c.batch(ctx, "get", ids, c.api.GetMediaByID)
}

// DeleteMany deletes several media items concurrently. Individual failures
// do not stop the remaining deletions.
func (c *Catalog) DeleteMany(ctx context.Context, ids []string) BatchResult {
	return c.batch(ctx, "delete", ids, c.api.DeleteMedia)
}

func (c *Catalog) batch(ctx context.Context, action string, ids []string, call func(context.Context, string) (any, error)) BatchResult {
	result := BatchResult{Results: make([]ItemResult, len(ids))}
	if len(ids) == 0 {
		return result
	}

	var g errgroup.Group
	g.SetLimit(c.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			doc, err := call(ctx, id)
			if err != nil {
				c.logger.Error().Err(err).Str("id", id).Str("action", action).Msg("Media request failed")
			}

			// each goroutine owns its own slot
			result.Results[i] = ItemResult{ID: id, Doc: doc, Err: err}
			return nil
		})
	}

	// never returns an error: failures are recorded per item
	_ = g.Wait()

	c.logger.Info().
		Str("action", action).
		Int("requested", len(ids)).
		Int("failed", len(result.Failed())).
		Msg("Batch complete")

	return result
}
