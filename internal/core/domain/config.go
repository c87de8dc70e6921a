// Package domain contains the core domain types for jig.
package domain

// ModuleKind selects the module system the emitted code targets.
type ModuleKind string

const (
	// ModuleCommonJS targets require/module.exports output.
	ModuleCommonJS ModuleKind = "commonjs"
	// ModuleESNext targets native ECMAScript modules.
	ModuleESNext ModuleKind = "esnext"
)

// CompilerOptions is the subset of compiler configuration jig acts on.
type CompilerOptions struct {
	// Module is the module system for emitted output.
	Module ModuleKind `json:"module" yaml:"module"`
	// SourceMap enables source map emission alongside compiled code.
	SourceMap bool `json:"sourceMap" yaml:"sourceMap"`
	// AllowJS lets plain JavaScript files pass through the compiler service.
	AllowJS bool `json:"allowJs" yaml:"allowJs"`
	// CheckJS extends diagnostic reporting to JavaScript files.
	CheckJS bool `json:"checkJs" yaml:"checkJs"`
}

// DiagnosticsOptions controls which diagnostics are reported and how.
type DiagnosticsOptions struct {
	// IgnoreCodes lists diagnostic codes that are never reported.
	IgnoreCodes []int `json:"ignoreCodes" yaml:"ignoreCodes"`
	// Exclude lists path glob patterns whose files are never type-checked.
	Exclude []string `json:"exclude" yaml:"exclude"`
	// WarnOnly downgrades every diagnostic to a logged warning.
	WarnOnly bool `json:"warnOnly" yaml:"warnOnly"`
}

// PluginOptions is jig's own configuration, separate from compiler options.
type PluginOptions struct {
	// Isolated compiles each file independently, without cross-file type data.
	Isolated bool `json:"isolated" yaml:"isolated"`
	// Diagnostics configures the reporting policy.
	Diagnostics DiagnosticsOptions `json:"diagnostics" yaml:"diagnostics"`
	// CacheDir overrides where the host runner stores transform results.
	// It is environment-specific and excluded from the config fingerprint.
	CacheDir string `json:"cacheDir,omitempty" yaml:"cacheDir"`
}

// Config is one logical compiler configuration. Within one process at most
// one live compilation session exists per distinct Config identity.
type Config struct {
	// RootDir is the absolute project root.
	RootDir string `json:"rootDir" yaml:"rootDir"`
	// Compiler holds the compiler options.
	Compiler CompilerOptions `json:"compiler" yaml:"compiler"`
	// Plugin holds jig's plugin options.
	Plugin PluginOptions `json:"plugin" yaml:"plugin"`
}

// DefaultConfig returns the configuration used when no config file is found.
func DefaultConfig(rootDir string) *Config {
	return &Config{
		RootDir: rootDir,
		Compiler: CompilerOptions{
			Module:    ModuleCommonJS,
			SourceMap: true,
		},
	}
}
