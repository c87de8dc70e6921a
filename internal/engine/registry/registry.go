// Package registry matches configuration identities to compilation
// sessions. It is the process-wide memoization table: repeated requests
// under one configuration reuse compiled state instead of rebuilding it.
package registry

import (
	"bytes"
	"sync"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/cachekey"
	"go.trai.ch/jig/internal/engine/session"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// ConfigSource identifies a configuration either by a live object or by
// its serialized form arriving from across a process boundary.
type ConfigSource struct {
	// Config is the live configuration object, if the caller has one.
	Config *domain.Config
	// Raw is the serialized (JSON) form, if that is all the caller has.
	Raw []byte
}

// ParseFunc decodes the serialized configuration form.
type ParseFunc func(raw []byte) (*domain.Config, error)

// ReporterFunc builds the diagnostics policy for one configuration.
type ReporterFunc func(cfg *domain.Config) ports.Reporter

// Entry is one registry record: the quadruple of configuration, session,
// dependency-graph cache and cache-key composer.
type Entry struct {
	// Config is the live configuration; back-patched when a live object
	// arrives after the entry was created from a serialized form.
	Config *domain.Config
	// Fingerprint is the deterministic configuration digest.
	Fingerprint string
	// Session is the compilation session for this configuration.
	Session *session.Session
	// Keyer composes cache keys for this configuration.
	Keyer *cachekey.Keyer
	// Reporter is the diagnostics policy for this configuration.
	Reporter ports.Reporter

	canon []byte
}

// Registry is the process-wide session table. Entries are appended and
// never evicted: an accepted memory/identity tradeoff for a single test
// run. It is not a package-level global; each worker process owns one.
type Registry struct {
	toolchain ports.Toolchain
	resolver  ports.ModuleResolver
	stat      ports.FileStat
	logger    ports.Logger
	parse     ParseFunc
	reporter  ReporterFunc

	mu      sync.Mutex
	group   singleflight.Group
	entries []*Entry
}

// New creates an empty Registry.
func New(toolchain ports.Toolchain, resolver ports.ModuleResolver, stat ports.FileStat, logger ports.Logger, parse ParseFunc, reporter ReporterFunc) *Registry {
	return &Registry{
		toolchain: toolchain,
		resolver:  resolver,
		stat:      stat,
		logger:    logger,
		parse:     parse,
		reporter:  reporter,
	}
}

// Resolve returns the entry for src, creating it on first sight. Lookup
// order: reference equality on live configs, then equality on the
// canonical serialized form. The latter handles a caller that first
// presents a re-serialized configuration and only later the live object,
// in which case the record is back-patched for future reference hits.
func (r *Registry) Resolve(src ConfigSource) (*Entry, error) {
	if src.Config == nil && len(src.Raw) == 0 {
		return nil, domain.ErrConfigSourceEmpty
	}

	r.mu.Lock()
	if src.Config != nil {
		for _, e := range r.entries {
			if e.Config == src.Config {
				r.mu.Unlock()
				return e, nil
			}
		}
	}
	r.mu.Unlock()

	cfg := src.Config
	if cfg == nil {
		parsed, err := r.parse(src.Raw)
		if err != nil {
			return nil, err
		}
		cfg = parsed
	}

	canon, fingerprint, err := Fingerprint(cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	for _, e := range r.entries {
		if bytes.Equal(e.canon, canon) {
			if src.Config != nil && e.Config != src.Config {
				// Back-patch the live reference for future identity hits.
				e.Config = src.Config
			}
			r.mu.Unlock()
			return e, nil
		}
	}
	r.mu.Unlock()

	// singleflight keeps a concurrent host from constructing the same
	// session twice; duplicate sessions would shred the identity invariant.
	v, err, _ := r.group.Do(fingerprint, func() (interface{}, error) {
		r.mu.Lock()
		for _, e := range r.entries {
			if bytes.Equal(e.canon, canon) {
				r.mu.Unlock()
				return e, nil
			}
		}
		r.mu.Unlock()

		entry, err := r.create(cfg, canon, fingerprint)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.entries = append(r.entries, entry)
		r.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create compilation session")
	}
	return v.(*Entry), nil
}

func (r *Registry) create(cfg *domain.Config, canon []byte, fingerprint string) (*Entry, error) {
	reporter := r.reporter(cfg)

	sess, err := session.New(cfg, r.toolchain, r.resolver, r.stat, r.logger, reporter)
	if err != nil {
		return nil, err
	}

	keyer := cachekey.New(fingerprint, cfg.RootDir, !cfg.Plugin.Isolated, sess.Graphs(), r.stat)

	return &Entry{
		Config:      cfg,
		Fingerprint: fingerprint,
		Session:     sess,
		Keyer:       keyer,
		Reporter:    reporter,
		canon:       canon,
	}, nil
}

// Len returns the number of live entries. Used by tests.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
