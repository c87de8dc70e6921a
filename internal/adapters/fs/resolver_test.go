package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/fs"
)

func TestResolver_Resolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "exact.ts"), "")
	writeFile(t, filepath.Join(dir, "plain.ts"), "")
	writeFile(t, filepath.Join(dir, "widget.tsx"), "")
	writeFile(t, filepath.Join(dir, "legacy.js"), "")
	writeFile(t, filepath.Join(dir, "remapped.ts"), "")
	writeFile(t, filepath.Join(dir, "lib", "index.ts"), "")
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "index.ts"), "")

	containing := filepath.Join(dir, "entry.ts")
	resolver := fs.NewResolver(fs.NewProbes())

	tests := []struct {
		name      string
		specifier string
		expected  string
		ok        bool
	}{
		{name: "exact extension hit", specifier: "./exact.ts", expected: filepath.Join(dir, "exact.ts"), ok: true},
		{name: "extensionless typescript", specifier: "./plain", expected: filepath.Join(dir, "plain.ts"), ok: true},
		{name: "extensionless tsx", specifier: "./widget", expected: filepath.Join(dir, "widget.tsx"), ok: true},
		{name: "extensionless javascript", specifier: "./legacy", expected: filepath.Join(dir, "legacy.js"), ok: true},
		{name: "js specifier remaps to on-disk ts", specifier: "./remapped.js", expected: filepath.Join(dir, "remapped.ts"), ok: true},
		{name: "directory import", specifier: "./lib", expected: filepath.Join(dir, "lib", "index.ts"), ok: true},
		{name: "parent-relative", specifier: "../" + filepath.Base(dir) + "/plain", expected: filepath.Join(dir, "plain.ts"), ok: true},
		{name: "bare specifier", specifier: "pkg", ok: false},
		{name: "node builtin", specifier: "fs", ok: false},
		{name: "relative into node_modules", specifier: "./node_modules/pkg", ok: false},
		{name: "missing file", specifier: "./missing", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := resolver.Resolve(tt.specifier, containing)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				resolved, err := filepath.EvalSymlinks(tt.expected)
				require.NoError(t, err)
				assert.Equal(t, resolved, path)
			} else {
				assert.Empty(t, path)
			}
		})
	}

	t.Run("prefers typescript over javascript", func(t *testing.T) {
		both := t.TempDir()
		writeFile(t, filepath.Join(both, "dep.js"), "")
		writeFile(t, filepath.Join(both, "dep.ts"), "")

		path, ok := resolver.Resolve("./dep", filepath.Join(both, "entry.ts"))
		require.True(t, ok)
		assert.Equal(t, ".ts", filepath.Ext(path))
	})

	t.Run("memoizes per directory and specifier", func(t *testing.T) {
		memo := t.TempDir()
		writeFile(t, filepath.Join(memo, "dep.ts"), "")

		a, okA := resolver.Resolve("./dep", filepath.Join(memo, "one.ts"))
		b, okB := resolver.Resolve("./dep", filepath.Join(memo, "two.ts"))
		require.True(t, okA)
		require.True(t, okB)
		assert.Equal(t, a, b)
	})
}
