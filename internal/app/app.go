// Package app implements the application layer for jig: the transform
// entry points the host runner calls.
package app

import (
	"context"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/cachekey"
	"go.trai.ch/jig/internal/engine/registry"
	"go.trai.ch/jig/internal/engine/session"
	"go.trai.ch/zerr"
)

// Options is the transform-options record accompanying each request.
type Options struct {
	// Config is the live configuration reference, when the caller has one.
	Config *domain.Config
	// ConfigJSON is the serialized configuration form, used when the
	// request crosses a process boundary.
	ConfigJSON []byte
	// SupportsESM reports whether the host executes native modules.
	SupportsESM bool
	// Instrument reports whether coverage instrumentation is active.
	Instrument bool
	// WatchMode enables eager re-diagnosis of dependents.
	WatchMode bool
	// FileCache is the host runner's read-through file cache, if any.
	FileCache ports.FileCache
}

// Transformer is the plugin facade. Both entry points behave identically
// except for diagnostic disposition: Process logs surviving diagnostics,
// ProcessAsync surfaces them as an error.
type Transformer struct {
	registry *registry.Registry
	logger   ports.Logger
	post     ports.PostProcessor
}

// New creates a Transformer. post is the optional secondary transform;
// nil is the default and means no post-processing.
func New(reg *registry.Registry, logger ports.Logger, post ports.PostProcessor) *Transformer {
	return &Transformer{registry: reg, logger: logger, post: post}
}

// Process is the synchronous entry point. Diagnostics that survive the
// reporting policy are logged; the request does not fail because of them.
func (t *Transformer) Process(ctx context.Context, content []byte, path string, opts Options) (domain.CompileResult, error) {
	entry, result, err := t.compile(content, path, opts)
	if err != nil {
		return domain.CompileResult{}, err
	}

	entry.Reporter.Log(result.Diagnostics)

	return t.postProcess(ctx, content, path, result)
}

// ProcessAsync is the asynchronous entry point. Type diagnostics surface
// as a returned error instead of only being logged.
func (t *Transformer) ProcessAsync(ctx context.Context, content []byte, path string, opts Options) (domain.CompileResult, error) {
	entry, result, err := t.compile(content, path, opts)
	if err != nil {
		return domain.CompileResult{}, err
	}

	if err := entry.Reporter.Report(result.Diagnostics); err != nil {
		return domain.CompileResult{}, err
	}

	return t.postProcess(ctx, content, path, result)
}

// CacheKey composes the digest the host caches this file's transform
// under. It is callable before any compile request for the same file.
func (t *Transformer) CacheKey(content []byte, path string, opts Options) (string, error) {
	entry, err := t.registry.Resolve(registry.ConfigSource{Config: opts.Config, Raw: opts.ConfigJSON})
	if err != nil {
		return "", err
	}
	return entry.Keyer.Key(content, path, cachekey.Options{
		Instrument:  opts.Instrument,
		SupportsESM: opts.SupportsESM,
	}), nil
}

func (t *Transformer) compile(content []byte, path string, opts Options) (*registry.Entry, domain.CompileResult, error) {
	entry, err := t.registry.Resolve(registry.ConfigSource{Config: opts.Config, Raw: opts.ConfigJSON})
	if err != nil {
		return nil, domain.CompileResult{}, err
	}

	result, err := entry.Session.Compile(content, path, session.CompileOptions{
		SupportsESM: opts.SupportsESM,
		WatchMode:   opts.WatchMode,
		FileCache:   opts.FileCache,
	})
	if err != nil {
		return nil, domain.CompileResult{}, err
	}
	return entry, result, nil
}

func (t *Transformer) postProcess(ctx context.Context, content []byte, path string, result domain.CompileResult) (domain.CompileResult, error) {
	if t.post == nil {
		return result, nil
	}
	processed, err := t.post.Process(ctx, ports.ProcessArgs{
		Content: content,
		Path:    path,
		Result:  result,
	})
	if err != nil {
		return domain.CompileResult{}, zerr.With(zerr.Wrap(err, domain.ErrPostProcessFailed.Error()), "path", path)
	}
	return processed, nil
}
