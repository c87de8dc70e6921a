package ports

import (
	"context"

	"go.trai.ch/jig/internal/core/domain"
)

// ProcessArgs carries the original request alongside the compiled result so
// a post-processor can act on both.
type ProcessArgs struct {
	// Content is the original file text.
	Content []byte
	// Path is the absolute file path.
	Path string
	// Result is the compiled output about to be returned to the host.
	Result domain.CompileResult
}

// PostProcessor is the optional secondary transform applied after
// compilation. It is injected explicitly; absence is the default and not an
// error.
type PostProcessor interface {
	// Process returns a possibly-modified compiled result.
	Process(ctx context.Context, args ProcessArgs) (domain.CompileResult, error)
}
