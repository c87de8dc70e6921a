package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/config"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoader_Load(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := newLoader(t).Load(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, cfg.RootDir)
		assert.Equal(t, domain.ModuleCommonJS, cfg.Compiler.Module)
		assert.True(t, cfg.Compiler.SourceMap)
		assert.False(t, cfg.Plugin.Isolated)
	})

	t.Run("parses a full config", func(t *testing.T) {
		dir := t.TempDir()
		content := `version: "1"
compiler:
  module: esnext
  sourceMap: false
  allowJs: true
  checkJs: true
plugin:
  isolated: true
  cacheDir: /tmp/jig-cache
  diagnostics:
    ignoreCodes: [2307, 2322]
    exclude:
      - "**/*.gen.ts"
    warnOnly: true
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte(content), 0o644))

		cfg, err := newLoader(t).Load(dir)
		require.NoError(t, err)
		assert.Equal(t, domain.ModuleESNext, cfg.Compiler.Module)
		assert.False(t, cfg.Compiler.SourceMap)
		assert.True(t, cfg.Compiler.AllowJS)
		assert.True(t, cfg.Compiler.CheckJS)
		assert.True(t, cfg.Plugin.Isolated)
		assert.Equal(t, "/tmp/jig-cache", cfg.Plugin.CacheDir)
		assert.Equal(t, []int{2307, 2322}, cfg.Plugin.Diagnostics.IgnoreCodes)
		assert.Equal(t, []string{"**/*.gen.ts"}, cfg.Plugin.Diagnostics.Exclude)
		assert.True(t, cfg.Plugin.Diagnostics.WarnOnly)
	})

	t.Run("partial config keeps remaining defaults", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte("compiler:\n  allowJs: true\n"), 0o644))

		cfg, err := newLoader(t).Load(dir)
		require.NoError(t, err)
		assert.True(t, cfg.Compiler.AllowJS)
		assert.Equal(t, domain.ModuleCommonJS, cfg.Compiler.Module)
		assert.True(t, cfg.Compiler.SourceMap)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.Filename), []byte("compiler: [\n"), 0o644))

		_, err := newLoader(t).Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestParseJSON(t *testing.T) {
	t.Run("decodes the serialized form", func(t *testing.T) {
		raw := []byte(`{"rootDir":"/proj","compiler":{"module":"esnext","sourceMap":true}}`)

		cfg, err := config.ParseJSON(raw)
		require.NoError(t, err)
		assert.Equal(t, "/proj", cfg.RootDir)
		assert.Equal(t, domain.ModuleESNext, cfg.Compiler.Module)
		assert.True(t, cfg.Compiler.SourceMap)
	})

	t.Run("defaults the module kind", func(t *testing.T) {
		cfg, err := config.ParseJSON([]byte(`{"rootDir":"/proj"}`))
		require.NoError(t, err)
		assert.Equal(t, domain.ModuleCommonJS, cfg.Compiler.Module)
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		_, err := config.ParseJSON([]byte("{"))
		require.Error(t, err)
	})
}
