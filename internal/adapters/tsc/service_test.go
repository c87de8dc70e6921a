package tsc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/tsc"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
)

// fakeHost is a hand-rolled ScriptHost over an in-memory file set.
type fakeHost struct {
	versions  map[string]uint64
	snapshots map[string][]byte
	resolved  map[string]string
	reads     map[string]int
}

var _ ports.ScriptHost = (*fakeHost)(nil)

func newFakeHost() *fakeHost {
	return &fakeHost{
		versions:  make(map[string]uint64),
		snapshots: make(map[string][]byte),
		resolved:  make(map[string]string),
		reads:     make(map[string]int),
	}
}

func (h *fakeHost) set(path, content string) {
	h.versions[path]++
	h.snapshots[path] = []byte(content)
}

func (h *fakeHost) ScriptPaths() []string {
	paths := make([]string, 0, len(h.snapshots))
	for path := range h.snapshots {
		paths = append(paths, path)
	}
	return paths
}

func (h *fakeHost) ScriptVersion(path string) (uint64, bool) {
	v, ok := h.versions[path]
	return v, ok
}

func (h *fakeHost) ScriptSnapshot(path string) ([]byte, bool) {
	h.reads[path]++
	content, ok := h.snapshots[path]
	return content, ok
}

func (h *fakeHost) ResolveModule(specifier, containingFile string) (string, bool) {
	resolved, ok := h.resolved[specifier]
	return resolved, ok
}

func newTestService(t *testing.T, host ports.ScriptHost, opts domain.CompilerOptions) ports.LanguageService {
	t.Helper()
	svc, err := tsc.New().NewService(host, opts)
	require.NoError(t, err)
	return svc
}

func TestService_Emit(t *testing.T) {
	t.Run("emits stripped javascript", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const n: number = 1;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		out, err := svc.Emit("/p/a.ts")
		require.NoError(t, err)
		assert.False(t, out.Skipped)
		require.Len(t, out.Files, 1)
		assert.Equal(t, "a.js", out.Files[0].Name)
		assert.NotContains(t, out.Files[0].Text, ": number")
		assert.Contains(t, out.Files[0].Text, "= 1;")
	})

	t.Run("includes a map file when source maps are on", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const n = 1;\n")
		svc := newTestService(t, host, domain.CompilerOptions{SourceMap: true})

		out, err := svc.Emit("/p/a.ts")
		require.NoError(t, err)
		require.Len(t, out.Files, 2)
		assert.Equal(t, "a.js.map", out.Files[1].Name)
		assert.Contains(t, out.Files[1].Text, `"version":3`)
	})

	t.Run("memoizes by version", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const n = 1;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		first, err := svc.Emit("/p/a.ts")
		require.NoError(t, err)
		second, err := svc.Emit("/p/a.ts")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, host.reads["/p/a.ts"])
	})

	t.Run("reanalyzes after a version bump", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const n = 1;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		_, err := svc.Emit("/p/a.ts")
		require.NoError(t, err)

		host.set("/p/a.ts", "const n = 2;\n")
		out, err := svc.Emit("/p/a.ts")
		require.NoError(t, err)

		assert.Contains(t, out.Files[0].Text, "= 2;")
		assert.Equal(t, 2, host.reads["/p/a.ts"])
	})

	t.Run("declaration files emit nothing", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.d.ts", "declare const n: number;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		out, err := svc.Emit("/p/a.d.ts")
		require.NoError(t, err)
		assert.False(t, out.Skipped)
		assert.Empty(t, out.Files)
	})

	t.Run("hybrid templates are skipped", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/App.vue", "<template></template>\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		out, err := svc.Emit("/p/App.vue")
		require.NoError(t, err)
		assert.True(t, out.Skipped)
	})

	t.Run("missing snapshot is skipped", func(t *testing.T) {
		svc := newTestService(t, newFakeHost(), domain.CompilerOptions{})

		out, err := svc.Emit("/p/gone.ts")
		require.NoError(t, err)
		assert.True(t, out.Skipped)
	})
}

func TestService_Diagnostics(t *testing.T) {
	t.Run("flags a literal type mismatch", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const n: number = \"oops\";\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		diags, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Equal(t, 2322, diags[0].Code)
		assert.Equal(t, domain.SeverityError, diags[0].Severity)
		assert.Equal(t, "Type 'string' is not assignable to type 'number'.", diags[0].Message)
		assert.Equal(t, 1, diags[0].Line)
	})

	t.Run("flags an unresolved relative import", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "import { x } from './missing';\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		diags, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Equal(t, 2307, diags[0].Code)
		assert.Contains(t, diags[0].Message, "'./missing'")
	})

	t.Run("resolvable imports are clean", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "import { x } from './dep';\n")
		host.resolved["./dep"] = "/p/dep.ts"
		svc := newTestService(t, host, domain.CompilerOptions{})

		diags, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("bare specifiers are never flagged", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "import fs from 'fs';\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		diags, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		assert.Empty(t, diags)
	})

	t.Run("memoizes until invalidated", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const ok = true;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		_, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		_, err = svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		assert.Equal(t, 1, host.reads["/p/a.ts"])

		svc.Invalidate("/p/a.ts")
		_, err = svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		assert.Equal(t, 2, host.reads["/p/a.ts"])
	})

	t.Run("boolean literal against string annotation", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const flag: string = true;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		diags, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		require.Len(t, diags, 1)
		assert.Equal(t, "Type 'boolean' is not assignable to type 'string'.", diags[0].Message)
	})

	t.Run("matching literal is clean", func(t *testing.T) {
		host := newFakeHost()
		host.set("/p/a.ts", "const n: number = 42;\n")
		svc := newTestService(t, host, domain.CompilerOptions{})

		diags, err := svc.Diagnostics("/p/a.ts")
		require.NoError(t, err)
		assert.Empty(t, diags)
	})
}
