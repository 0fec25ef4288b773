package mediaapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryOptions_Encode(t *testing.T) {
	var nilString *string
	empty := ""
	limit := 10

	tests := []struct {
		name     string
		query    *QueryOptions
		expected string
	}{
		{
			name:     "nil options",
			query:    nil,
			expected: "",
		},
		{
			name:     "empty options",
			query:    NewQueryOptions(),
			expected: "",
		},
		{
			name:     "all absent",
			query:    NewQueryOptions().Add("genre", nil).Add("sort", nilString),
			expected: "",
		},
		{
			name:     "insertion order kept",
			query:    NewQueryOptions().Add("sort", "title").Add("genre", "comedy"),
			expected: "?sort=title&genre=comedy",
		},
		{
			name:     "absent keys skipped",
			query:    NewQueryOptions().Add("genre", "drama").Add("sort", nil).Add("page", 2),
			expected: "?genre=drama&page=2",
		},
		{
			name:     "values percent encoded",
			query:    NewQueryOptions().Add("q", "star wars & co/=?").Add("genre", "sci-fi"),
			expected: "?q=star%20wars%20%26%20co%2F%3D%3F&genre=sci-fi",
		},
		{
			name:     "empty string is present",
			query:    NewQueryOptions().Add("genre", empty),
			expected: "?genre=",
		},
		{
			name:     "scalars stringified",
			query:    NewQueryOptions().Add("limit", &limit).Add("order", -1).Add("rated", true).Add("min", 3.5),
			expected: "?limit=10&order=-1&rated=true&min=3.5",
		},
		{
			name:     "duplicate keys not merged",
			query:    NewQueryOptions().Add("genre", "a").Add("genre", "b"),
			expected: "?genre=a&genre=b",
		},
		{
			name:     "plus sign encoded",
			query:    NewQueryOptions().Add("q", "a+b"),
			expected: "?q=a%2Bb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Encode())
		})
	}
}

func TestQueryOptions_Len(t *testing.T) {
	var q *QueryOptions
	assert.Equal(t, 0, q.Len())

	q = NewQueryOptions().Add("a", nil).Add("b", 1)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, "?b=1", q.String())
}
