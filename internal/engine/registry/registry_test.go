package registry_test

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/core/ports/mocks"
	"go.trai.ch/jig/internal/engine/registry"
	"go.uber.org/mock/gomock"
)

type registryStat struct{}

func (registryStat) FileExists(string) bool       { return true }
func (registryStat) ModTime(string) (int64, bool) { return 1, true }
func (registryStat) Invalidate(string)            {}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	ctrl := gomock.NewController(t)

	toolchain := mocks.NewMockToolchain(ctrl)
	toolchain.EXPECT().NewService(gomock.Any(), gomock.Any()).DoAndReturn(
		func(host ports.ScriptHost, opts domain.CompilerOptions) (ports.LanguageService, error) {
			return mocks.NewMockLanguageService(ctrl), nil
		},
	).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	reporterFor := func(cfg *domain.Config) ports.Reporter {
		return mocks.NewMockReporter(ctrl)
	}
	parse := func(raw []byte) (*domain.Config, error) {
		var cfg domain.Config
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	return registry.New(toolchain, mocks.NewMockModuleResolver(ctrl), registryStat{}, logger, parse, reporterFor)
}

func TestRegistry_Resolve(t *testing.T) {
	t.Run("same live config resolves to the same entry", func(t *testing.T) {
		reg := newRegistry(t)
		cfg := domain.DefaultConfig("/p")

		first, err := reg.Resolve(registry.ConfigSource{Config: cfg})
		require.NoError(t, err)
		second, err := reg.Resolve(registry.ConfigSource{Config: cfg})
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("equal configs share one session", func(t *testing.T) {
		reg := newRegistry(t)

		first, err := reg.Resolve(registry.ConfigSource{Config: domain.DefaultConfig("/p")})
		require.NoError(t, err)
		second, err := reg.Resolve(registry.ConfigSource{Config: domain.DefaultConfig("/p")})
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("distinct configs get distinct sessions", func(t *testing.T) {
		reg := newRegistry(t)

		first, err := reg.Resolve(registry.ConfigSource{Config: domain.DefaultConfig("/p")})
		require.NoError(t, err)

		other := domain.DefaultConfig("/p")
		other.Compiler.Module = domain.ModuleESNext
		second, err := reg.Resolve(registry.ConfigSource{Config: other})
		require.NoError(t, err)

		assert.NotSame(t, first, second)
		assert.NotEqual(t, first.Fingerprint, second.Fingerprint)
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("serialized form matches the live object", func(t *testing.T) {
		reg := newRegistry(t)
		cfg := domain.DefaultConfig("/p")

		raw, err := json.Marshal(cfg)
		require.NoError(t, err)

		fromRaw, err := reg.Resolve(registry.ConfigSource{Raw: raw})
		require.NoError(t, err)
		fromLive, err := reg.Resolve(registry.ConfigSource{Config: cfg})
		require.NoError(t, err)

		assert.Same(t, fromRaw, fromLive)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("live object back-patches an entry created from raw", func(t *testing.T) {
		reg := newRegistry(t)
		cfg := domain.DefaultConfig("/p")

		raw, err := json.Marshal(cfg)
		require.NoError(t, err)

		entry, err := reg.Resolve(registry.ConfigSource{Raw: raw})
		require.NoError(t, err)
		assert.NotSame(t, cfg, entry.Config)

		patched, err := reg.Resolve(registry.ConfigSource{Config: cfg})
		require.NoError(t, err)
		require.Same(t, entry, patched)
		assert.Same(t, cfg, patched.Config)

		// The next reference-equality lookup now hits directly.
		again, err := reg.Resolve(registry.ConfigSource{Config: cfg})
		require.NoError(t, err)
		assert.Same(t, entry, again)
	})

	t.Run("cacheDir does not split sessions", func(t *testing.T) {
		reg := newRegistry(t)

		a := domain.DefaultConfig("/p")
		a.Plugin.CacheDir = "/tmp/cache-a"
		b := domain.DefaultConfig("/p")
		b.Plugin.CacheDir = "/tmp/cache-b"

		first, err := reg.Resolve(registry.ConfigSource{Config: a})
		require.NoError(t, err)
		second, err := reg.Resolve(registry.ConfigSource{Config: b})
		require.NoError(t, err)

		assert.Same(t, first, second)
	})

	t.Run("empty source is rejected", func(t *testing.T) {
		reg := newRegistry(t)

		_, err := reg.Resolve(registry.ConfigSource{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConfigSourceEmpty))
	})

	t.Run("parse failure surfaces", func(t *testing.T) {
		reg := newRegistry(t)

		_, err := reg.Resolve(registry.ConfigSource{Raw: []byte("{")})
		require.Error(t, err)
	})

	t.Run("concurrent resolution creates one session", func(t *testing.T) {
		reg := newRegistry(t)
		cfg := domain.DefaultConfig("/p")

		const workers = 16
		entries := make([]*registry.Entry, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				entry, err := reg.Resolve(registry.ConfigSource{Config: cfg})
				assert.NoError(t, err)
				entries[i] = entry
			}(i)
		}
		wg.Wait()

		require.Equal(t, 1, reg.Len())
		for i := 1; i < workers; i++ {
			assert.Same(t, entries[0], entries[i])
		}
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("is deterministic", func(t *testing.T) {
		_, a, err := registry.Fingerprint(domain.DefaultConfig("/p"))
		require.NoError(t, err)
		_, b, err := registry.Fingerprint(domain.DefaultConfig("/p"))
		require.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("differs across configurations", func(t *testing.T) {
		_, a, err := registry.Fingerprint(domain.DefaultConfig("/p"))
		require.NoError(t, err)

		other := domain.DefaultConfig("/p")
		other.Plugin.Diagnostics.WarnOnly = true
		_, b, err := registry.Fingerprint(other)
		require.NoError(t, err)

		assert.NotEqual(t, a, b)
	})

	t.Run("ignores the cache directory", func(t *testing.T) {
		withDir := domain.DefaultConfig("/p")
		withDir.Plugin.CacheDir = "/tmp/elsewhere"

		_, a, err := registry.Fingerprint(domain.DefaultConfig("/p"))
		require.NoError(t, err)
		_, b, err := registry.Fingerprint(withDir)
		require.NoError(t, err)

		assert.Equal(t, a, b)
	})
}
