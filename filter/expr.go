package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/mediashelf/mediaapi"
)

// DefaultCacheSize is the number of compiled expressions kept by NewExprCompiler
const DefaultCacheSize = 64

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*ExprCompiler)

// WithCache sets the compiled expression cache size. Zero disables caching.
func WithCache(size int) ExprCompilerOption {
	return func(c *ExprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		} else {
			c.cache = nil
		}
	}
}

// ExprCompiler compiles expr expressions evaluated against media items
type ExprCompiler struct {
	cache *lruCache
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) *ExprCompiler {
	c := &ExprCompiler{
		cache: newLRUCache(DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter
func (c *ExprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached.(CompiledFilter), nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(mediaapi.Media{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Size returns the number of cached filters
func (c *ExprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Clear removes all cached filters
func (c *ExprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Evaluate evaluates the filter against a media item. Runtime errors count
// as no match.
func (f *exprFilter) Evaluate(item mediaapi.Media) bool {
	result, err := expr.Run(f.program, newEnvironment(item))
	if err != nil {
		return false
	}
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// newEnvironment exposes the item's fields and the helper functions
func newEnvironment(item mediaapi.Media) map[string]any {
	genres := item.Genres
	if genres == nil {
		genres = []string{}
	}

	return map[string]any{
		"ID":          item.IDString(),
		"Title":       item.Title,
		"Description": item.Description,
		"Genres":      genres,
		"Rating":      item.Rating,
		"Status":      string(item.Status),
		"Type":        string(item.Type),

		"hasGenre": item.HasGenre,
		"isMovie":  item.Type.IsMovie,
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles expression with a fresh non-caching compiler
func Compile(expression string) (CompiledFilter, error) {
	return NewExprCompiler(WithCache(0)).Compile(expression)
}
