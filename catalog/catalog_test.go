package catalog

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/mediashelf/mediaapi"
)

// mockMediaAPI implements mediaapi.API for testing
type mockMediaAPI struct {
	mu sync.Mutex

	listDoc any
	listErr error
	items   map[string]any
	failIDs map[string]int

	// Track calls for verification
	lastQuery *mediaapi.QueryOptions
	deleted   []string
}

func (m *mockMediaAPI) ListMedia(ctx context.Context, query *mediaapi.QueryOptions) (any, error) {
	m.lastQuery = query
	return m.listDoc, m.listErr
}

func (m *mockMediaAPI) GetMediaByID(ctx context.Context, id string) (any, error) {
	if status, ok := m.failIDs[id]; ok {
		return nil, &mediaapi.FetchFailedError{Operation: mediaapi.OpGetMediaByID, StatusCode: status}
	}
	return m.items[id], nil
}

func (m *mockMediaAPI) CreateMedia(ctx context.Context, payload any) (any, error) {
	return payload, nil
}

func (m *mockMediaAPI) UpdateMedia(ctx context.Context, id string, payload any) (any, error) {
	return payload, nil
}

func (m *mockMediaAPI) DeleteMedia(ctx context.Context, id string) (any, error) {
	if status, ok := m.failIDs[id]; ok {
		return nil, &mediaapi.FetchFailedError{Operation: mediaapi.OpDeleteMedia, StatusCode: status}
	}
	m.mu.Lock()
	m.deleted = append(m.deleted, id)
	m.mu.Unlock()
	return map[string]any{"status": "success"}, nil
}

func (m *mockMediaAPI) GenerateRandomMedia(ctx context.Context, n int) (any, error) {
	return []any{}, nil
}

func (m *mockMediaAPI) Health(ctx context.Context) (any, error) {
	return map[string]any{"status": "success"}, nil
}

func sampleListDoc() map[string]any {
	return map[string]any{
		"status":  "success",
		"results": float64(3),
		"media": []any{
			map[string]any{"_id": "1", "title": "Heat", "genres": []any{"crime"}, "rating": 4.5, "status": "Watched", "type": "Movie"},
			map[string]any{"_id": "2", "title": "arrival", "genres": []any{"sci-fi", "drama"}, "rating": 4.0, "status": "PlanToWatch", "type": "Movie"},
			map[string]any{"_id": "3", "title": "Severance", "genres": []any{"drama"}, "rating": 5.0, "status": "Watching", "type": "Show"},
		},
	}
}

func TestParseFailurePolicy(t *testing.T) {
	tests := []struct {
		input    string
		expected FailurePolicy
		wantErr  bool
	}{
		{"", PolicyNotFound, false},
		{"not_found", PolicyNotFound, false},
		{"EMPTY", PolicyEmpty, false},
		{"retry", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFailurePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPolicy(t *testing.T) {
	api := &mockMediaAPI{}
	assert.Equal(t, PolicyNotFound, New(api, zerolog.Nop()).Policy())
	assert.Equal(t, PolicyEmpty, New(api, zerolog.Nop(), WithFailurePolicy(PolicyEmpty)).Policy())
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	logger := zerolog.Nop()

	t.Run("extracts media field", func(t *testing.T) {
		api := &mockMediaAPI{listDoc: sampleListDoc()}
		c := New(api, logger)

		query := mediaapi.NewQueryOptions().Add("genre", "drama")
		page, err := c.Load(ctx, query)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Len())
		assert.Same(t, query, api.lastQuery)

		media, err := page.Typed()
		require.NoError(t, err)
		assert.Equal(t, "Heat", media[0].Title)
		assert.Equal(t, mediaapi.TypeShow, media[2].Type)
	})

	t.Run("accepts bare list", func(t *testing.T) {
		api := &mockMediaAPI{listDoc: []any{map[string]any{"title": "Alien"}}}
		page, err := New(api, logger).Load(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Len())
	})

	t.Run("empty list is not a failure", func(t *testing.T) {
		api := &mockMediaAPI{listDoc: map[string]any{"media": []any{}}}
		page, err := New(api, logger).Load(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, page.Len())
	})

	failures := []struct {
		name string
		api  *mockMediaAPI
	}{
		{"fetch failed", &mockMediaAPI{listErr: &mediaapi.FetchFailedError{Operation: mediaapi.OpListMedia, StatusCode: http.StatusInternalServerError}}},
		{"transport error", &mockMediaAPI{listErr: errors.New("connection refused")}},
		{"missing media field", &mockMediaAPI{listDoc: map[string]any{"status": "success"}}},
		{"media is not a list", &mockMediaAPI{listDoc: map[string]any{"media": "oops"}}},
		{"item is not an object", &mockMediaAPI{listDoc: []any{"oops"}}},
	}

	for _, tt := range failures {
		t.Run("not_found policy/"+tt.name, func(t *testing.T) {
			page, err := New(tt.api, logger, WithFailurePolicy(PolicyNotFound)).Load(ctx, nil)
			require.Error(t, err)
			assert.Nil(t, page)
			assert.ErrorIs(t, err, ErrNotFound)
		})

		t.Run("empty policy/"+tt.name, func(t *testing.T) {
			page, err := New(tt.api, logger, WithFailurePolicy(PolicyEmpty)).Load(ctx, nil)
			require.NoError(t, err)
			assert.Equal(t, 0, page.Len())
		})
	}

	t.Run("cause kept under not_found", func(t *testing.T) {
		api := &mockMediaAPI{listErr: &mediaapi.FetchFailedError{Operation: mediaapi.OpListMedia, StatusCode: http.StatusBadGateway}}
		_, err := New(api, logger).Load(ctx, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, mediaapi.ErrFetchFailed)
	})
}

func TestRefine(t *testing.T) {
	api := &mockMediaAPI{listDoc: sampleListDoc()}
	c := New(api, zerolog.Nop())

	page, err := c.Load(context.Background(), nil)
	require.NoError(t, err)
	media, err := page.Typed()
	require.NoError(t, err)

	titles := func(ms []mediaapi.Media) []string {
		out := make([]string, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.Title)
		}
		return out
	}

	tests := []struct {
		name     string
		opts     RefineOptions
		expected []string
		wantErr  bool
	}{
		{"no options", RefineOptions{}, []string{"Heat", "arrival", "Severance"}, false},
		{"filter by genre", RefineOptions{Where: `hasGenre("drama")`}, []string{"arrival", "Severance"}, false},
		{"sort by title ignores case", RefineOptions{SortBy: "title"}, []string{"arrival", "Heat", "Severance"}, false},
		{"sort by rating desc", RefineOptions{SortBy: "Rating", Desc: true}, []string{"Severance", "Heat", "arrival"}, false},
		{"filter sort and limit", RefineOptions{Where: `Type == "Movie"`, SortBy: "rating", Limit: 1}, []string{"arrival"}, false},
		{"unknown sort field", RefineOptions{SortBy: "year"}, nil, true},
		{"bad expression", RefineOptions{Where: `Year > 1`}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Refine(media, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, titles(got))
		})
	}

	// input left untouched
	assert.Equal(t, []string{"Heat", "arrival", "Severance"}, titles(media))
}

func TestSortFieldsAreComparable(t *testing.T) {
	for _, field := range SortFields() {
		_, ok := comparators[field]
		assert.True(t, ok, field)
	}
}

func TestDeleteMany(t *testing.T) {
	api := &mockMediaAPI{failIDs: map[string]int{"bad": http.StatusNotFound}}
	c := New(api, zerolog.Nop(), WithConcurrency(2))

	ids := []string{"1", "bad", "2", "3"}
	result := c.DeleteMany(context.Background(), ids)

	require.Len(t, result.Results, 4)
	for i, id := range ids {
		assert.Equal(t, id, result.Results[i].ID)
	}
	assert.Equal(t, 3, result.Succeeded())

	failed := result.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "bad", failed[0].ID)
	assert.ErrorIs(t, result.Err(), mediaapi.ErrFetchFailed)

	sort.Strings(api.deleted)
	assert.Equal(t, []string{"1", "2", "3"}, api.deleted)
}

func TestGetMany(t *testing.T) {
	api := &mockMediaAPI{
		items: map[string]any{
			"1": map[string]any{"title": "Heat"},
			"2": map[string]any{"title": "Alien"},
		},
		failIDs: map[string]int{"x": http.StatusInternalServerError, "y": http.StatusNotFound},
	}
	c := New(api, zerolog.Nop())

	result := c.GetMany(context.Background(), []string{"1", "2"})
	require.NoError(t, result.Err())
	assert.Equal(t, map[string]any{"title": "Alien"}, result.Results[1].Doc)

	result = c.GetMany(context.Background(), []string{"1", "x", "y"})
	require.Error(t, result.Err())
	assert.Contains(t, result.Err().Error(), "2 of 3 requests failed")

	assert.NoError(t, c.GetMany(context.Background(), nil).Err())
}
