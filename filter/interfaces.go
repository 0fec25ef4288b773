package filter

import (
	"github.com/s0up4200/mediashelf/mediaapi"
)

// Filter defines the basic interface for media filters
type Filter interface {
	// Evaluate checks if a media item matches the filter criteria
	Evaluate(item mediaapi.Media) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}
