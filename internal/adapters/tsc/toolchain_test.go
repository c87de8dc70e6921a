package tsc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jig/internal/adapters/tsc"
	"go.trai.ch/jig/internal/core/domain"
)

func TestToolchain_Accepts(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		opts     domain.CompilerOptions
		expected bool
	}{
		{name: "typescript file", path: "/p/a.ts", expected: true},
		{name: "tsx file", path: "/p/a.tsx", expected: true},
		{name: "module typescript", path: "/p/a.mts", expected: true},
		{name: "declaration file", path: "/p/a.d.ts", expected: true},
		{name: "hybrid template", path: "/p/App.vue", expected: true},
		{name: "javascript without allowJs", path: "/p/a.js", expected: false},
		{name: "javascript with allowJs", path: "/p/a.js", opts: domain.CompilerOptions{AllowJS: true}, expected: true},
		{name: "jsx with allowJs", path: "/p/a.jsx", opts: domain.CompilerOptions{AllowJS: true}, expected: true},
		{name: "json file", path: "/p/a.json", expected: false},
		{name: "css file", path: "/p/a.css", expected: false},
	}

	toolchain := tsc.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toolchain.Accepts(tt.path, tt.opts))
		})
	}
}

func TestToolchain_Transpile(t *testing.T) {
	toolchain := tsc.New()

	t.Run("erases type annotations", func(t *testing.T) {
		src := "export const sum = (a: number, b: number): number => a + b;\n"
		result, err := toolchain.Transpile([]byte(src), "/p/sum.ts", domain.CompilerOptions{})
		require.NoError(t, err)

		assert.NotContains(t, result.Code, ": number")
		assert.Contains(t, result.Code, "export const sum =")
		assert.Contains(t, result.Code, "a + b;")
		assert.Empty(t, result.Diagnostics)
	})

	t.Run("erasure preserves length and line count", func(t *testing.T) {
		src := "interface Point {\n  x: number;\n  y: number;\n}\nconst p = { x: 1, y: 2 };\n"
		result, err := toolchain.Transpile([]byte(src), "/p/point.ts", domain.CompilerOptions{})
		require.NoError(t, err)

		assert.Len(t, result.Code, len(src))
		assert.Equal(t, strings.Count(src, "\n"), strings.Count(result.Code, "\n"))
		assert.NotContains(t, result.Code, "interface")
		assert.Contains(t, result.Code, "const p = { x: 1, y: 2 };")
	})

	t.Run("erases type-only constructs", func(t *testing.T) {
		src := strings.Join([]string{
			"import type { Foo } from './foo';",
			"type Alias = string;",
			"export interface Shape { kind: string }",
			"declare const ambient: number;",
			"const v = window as unknown;",
			"const w = v!;",
			"export const kept = 1;",
			"",
		}, "\n")
		result, err := toolchain.Transpile([]byte(src), "/p/types.ts", domain.CompilerOptions{})
		require.NoError(t, err)

		for _, gone := range []string{"import type", "type Alias", "interface Shape", "declare const", "as unknown", "v!"} {
			assert.NotContains(t, result.Code, gone)
		}
		assert.Contains(t, result.Code, "const v = window")
		assert.Contains(t, result.Code, "const w = v")
		assert.Contains(t, result.Code, "export const kept = 1;")
	})

	t.Run("erases optional markers and modifiers", func(t *testing.T) {
		src := strings.Join([]string{
			"class Greeter {",
			"  private name: string;",
			"  constructor(name?: string) {",
			"    this.name = name ?? 'world';",
			"  }",
			"}",
			"",
		}, "\n")
		result, err := toolchain.Transpile([]byte(src), "/p/greeter.ts", domain.CompilerOptions{})
		require.NoError(t, err)

		assert.NotContains(t, result.Code, "private")
		assert.NotContains(t, result.Code, "name?")
		assert.NotContains(t, result.Code, ": string")
		assert.Contains(t, result.Code, "class Greeter {")
		assert.Contains(t, result.Code, "this.name = name ?? 'world';")
	})

	t.Run("keeps runtime imports", func(t *testing.T) {
		src := "import { helper } from './helper';\nexport const out = helper();\n"
		result, err := toolchain.Transpile([]byte(src), "/p/mod.ts", domain.CompilerOptions{})
		require.NoError(t, err)

		assert.Contains(t, result.Code, "from './helper';")
	})

	t.Run("compiles tsx", func(t *testing.T) {
		src := "export const App = (props: { label: string }) => <div>{props.label}</div>;\n"
		result, err := toolchain.Transpile([]byte(src), "/p/app.tsx", domain.CompilerOptions{})
		require.NoError(t, err)

		assert.Empty(t, result.Diagnostics)
		assert.Contains(t, result.Code, "<div>{props.label}</div>")
		assert.NotContains(t, result.Code, "label: string")
	})

	t.Run("reports syntax errors", func(t *testing.T) {
		src := "const = 1;\n"
		result, err := toolchain.Transpile([]byte(src), "/p/broken.ts", domain.CompilerOptions{})
		require.NoError(t, err)

		require.NotEmpty(t, result.Diagnostics)
		assert.Equal(t, domain.SeverityError, result.Diagnostics[0].Severity)
		assert.Equal(t, "/p/broken.ts", result.Diagnostics[0].File)
		assert.Equal(t, 1, result.Diagnostics[0].Line)
	})

	t.Run("emits a source map on demand", func(t *testing.T) {
		src := "const a: number = 1;\nconst b = a;\n"
		result, err := toolchain.Transpile([]byte(src), "/p/mapped.ts", domain.CompilerOptions{SourceMap: true})
		require.NoError(t, err)

		assert.Contains(t, result.SourceMap, `"version":3`)
		assert.Contains(t, result.SourceMap, `"file":"mapped.js"`)
		assert.Contains(t, result.SourceMap, `"sources":["mapped.ts"]`)
		assert.Contains(t, result.SourceMap, `"mappings":"AAAA;AACA;AACA"`)
	})

	t.Run("no source map by default", func(t *testing.T) {
		result, err := toolchain.Transpile([]byte("const a = 1;\n"), "/p/plain.ts", domain.CompilerOptions{})
		require.NoError(t, err)
		assert.Empty(t, result.SourceMap)
	})
}

func TestToolchain_ScanImports(t *testing.T) {
	toolchain := tsc.New()

	t.Run("collects specifiers in document order", func(t *testing.T) {
		src := strings.Join([]string{
			"import a from './a';",
			"import { b } from '../b';",
			"export { c } from './c';",
			"const d = require('./d');",
			"const e = import('./e');",
			"import 'pkg';",
			"",
		}, "\n")
		specs, err := toolchain.ScanImports([]byte(src), "/p/entry.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"./a", "../b", "./c", "./d", "./e", "pkg"}, specs)
	})

	t.Run("skips type-only imports", func(t *testing.T) {
		src := "import type { T } from './types';\nimport { v } from './values';\n"
		specs, err := toolchain.ScanImports([]byte(src), "/p/entry.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"./values"}, specs)
	})

	t.Run("deduplicates repeated specifiers", func(t *testing.T) {
		src := "import { a } from './dep';\nimport { b } from './dep';\n"
		specs, err := toolchain.ScanImports([]byte(src), "/p/entry.ts")
		require.NoError(t, err)
		assert.Equal(t, []string{"./dep"}, specs)
	})

	t.Run("no imports", func(t *testing.T) {
		specs, err := toolchain.ScanImports([]byte("const a = 1;\n"), "/p/entry.ts")
		require.NoError(t, err)
		assert.Empty(t, specs)
	})
}
