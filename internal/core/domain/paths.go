package domain

import (
	"path/filepath"
	"strings"
)

// IsDeclarationFile reports whether path names a declaration-only file.
// Declaration files have no runtime semantics and are never executed.
func IsDeclarationFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(base, ".d.ts") ||
		strings.HasSuffix(base, ".d.mts") ||
		strings.HasSuffix(base, ".d.cts")
}

// IsTypedFile reports whether path names a strictly-typed source file.
// Emission being skipped for these files is fatal: there is no safe
// fallback script to execute.
func IsTypedFile(path string) bool {
	if IsDeclarationFile(path) {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return true
	}
	return false
}

// IsScriptFile reports whether path names a plain JavaScript file.
func IsScriptFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".mjs", ".cjs":
		return true
	}
	return false
}

// IsHybridFile reports whether path names a template/markup hybrid handled by
// a secondary transform. Emission being skipped for these degrades to
// returning the original source.
func IsHybridFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vue", ".svelte":
		return true
	}
	return false
}
