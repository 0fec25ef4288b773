package mediaapi

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Well-known list query keys understood by the backend.
const (
	QueryPage  = "page"
	QueryLimit = "limit"
	QuerySort  = "sort"
	QueryOrder = "order"
	QueryGenre = "genre"
)

type queryParam struct {
	key   string
	value any
}

// QueryOptions is an ordered set of filter/sort parameters for ListMedia.
// Keys are neither deduplicated nor sorted; insertion order is kept.
type QueryOptions struct {
	params []queryParam
}

// NewQueryOptions returns an empty QueryOptions.
func NewQueryOptions() *QueryOptions {
	return &QueryOptions{}
}

// Add appends a key/value pair. A nil value (or typed nil pointer) marks the
// key as absent and it is skipped on encoding.
func (q *QueryOptions) Add(key string, value any) *QueryOptions {
	q.params = append(q.params, queryParam{key: key, value: value})
	return q
}

// Len returns the number of pairs, absent ones included.
func (q *QueryOptions) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

// Encode builds the query string, including the leading '?'. It returns an
// empty string when no pair has a present value.
func (q *QueryOptions) Encode() string {
	if q == nil {
		return ""
	}

	pairs := make([]string, 0, len(q.params))
	for _, p := range q.params {
		if isAbsent(p.value) {
			continue
		}
		pairs = append(pairs, p.key+"="+escapeComponent(stringify(p.value)))
	}

	if len(pairs) == 0 {
		return ""
	}
	return "?" + strings.Join(pairs, "&")
}

// String implements fmt.Stringer
func (q *QueryOptions) String() string {
	return q.Encode()
}

func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func stringify(value any) string {
	s, err := cast.ToStringE(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return s
}

// escapeComponent percent-encodes a value; spaces become %20 rather than '+'.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
