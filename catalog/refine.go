package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/s0up4200/mediashelf/mediaapi"
)

// Sort fields understood by Refine
const (
	SortTitle  = "title"
	SortRating = "rating"
	SortStatus = "status"
	SortType   = "type"
)

// RefineOptions narrows and orders an already loaded list
type RefineOptions struct {
	// Where is an expr filter expression, see package filter
	Where  string
	SortBy string
	Desc   bool
	// Limit keeps the first N items after sorting; zero keeps all
	Limit int
}

var comparators = map[string]func(a, b mediaapi.Media) int{
	SortTitle: func(a, b mediaapi.Media) int {
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	},
	SortRating: func(a, b mediaapi.Media) int {
		return cmp.Compare(a.Rating, b.Rating)
	},
	SortStatus: func(a, b mediaapi.Media) int {
		return cmp.Compare(a.Status, b.Status)
	},
	SortType: func(a, b mediaapi.Media) int {
		return cmp.Compare(a.Type, b.Type)
	},
}

// Refine filters, sorts and truncates media. The input slice is not modified.
func (c *Catalog) Refine(media []mediaapi.Media, opts RefineOptions) ([]mediaapi.Media, error) {
	results := slices.Clone(media)

	if strings.TrimSpace(opts.Where) != "" {
		f, err := c.compiler.Compile(opts.Where)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		results = slices.DeleteFunc(results, func(m mediaapi.Media) bool {
			return !f.Evaluate(m)
		})
	}

	if opts.SortBy != "" {
		compare, ok := comparators[strings.ToLower(opts.SortBy)]
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q", opts.SortBy)
		}
		slices.SortStableFunc(results, func(a, b mediaapi.Media) int {
			if opts.Desc {
				return compare(b, a)
			}
			return compare(a, b)
		})
	}

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	c.logger.Debug().
		Int("input", len(media)).
		Int("output", len(results)).
		Str("where", opts.Where).
		Str("sort", opts.SortBy).
		Msg("Refined media list")

	return results, nil
}

// SortFields lists the accepted SortBy values
func SortFields() []string {
	return []string{SortTitle, SortRating, SortStatus, SortType}
}
