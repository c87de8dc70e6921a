package config

// Jigfile represents the structure of the jig.yaml configuration file.
type Jigfile struct {
	Version  string      `yaml:"version"`
	Compiler CompilerDTO `yaml:"compiler"`
	Plugin   PluginDTO   `yaml:"plugin"`
}

// CompilerDTO mirrors the compiler options section of jig.yaml.
type CompilerDTO struct {
	Module    string `yaml:"module"`
	SourceMap *bool  `yaml:"sourceMap"`
	AllowJS   bool   `yaml:"allowJs"`
	CheckJS   bool   `yaml:"checkJs"`
}

// PluginDTO mirrors the plugin options section of jig.yaml.
type PluginDTO struct {
	Isolated    bool           `yaml:"isolated"`
	Diagnostics DiagnosticsDTO `yaml:"diagnostics"`
	CacheDir    string         `yaml:"cacheDir"`
}

// DiagnosticsDTO mirrors the diagnostics policy section of jig.yaml.
type DiagnosticsDTO struct {
	IgnoreCodes []int    `yaml:"ignoreCodes"`
	Exclude     []string `yaml:"exclude"`
	WarnOnly    bool     `yaml:"warnOnly"`
}
