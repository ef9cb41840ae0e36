package lint

import (
	"context"

	"github.com/yaklabco/gocsslint/pkg/config"
	"github.com/yaklabco/gocsslint/pkg/css"
)

// Parser parses stylesheet source into a Stylesheet.
//
// The lint package defines this interface in the consumer package;
// css.Parser is the concrete implementation.
//
// Implementations must be side-effect free and return a *css.SyntaxError
// (possibly wrapped) for malformed input.
type Parser interface {
	Parse(ctx context.Context, path, source string, syntax config.Syntax) (*css.Stylesheet, error)
}
