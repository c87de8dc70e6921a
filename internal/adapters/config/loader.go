// Package config provides the configuration loader for jig.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Filename is the configuration file jig looks for in the project root.
const Filename = "jig.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration for the project rooted at rootDir. A missing
// config file is not an error: jig falls back to defaults so a project can
// run without any configuration at all.
func (l *Loader) Load(rootDir string) (*domain.Config, error) {
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to get absolute path of project root"), "root", rootDir)
	}

	path := filepath.Join(abs, Filename)
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from user-provided root
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultConfig(abs), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var jigfile Jigfile
	if err := yaml.Unmarshal(data, &jigfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return merge(abs, jigfile), nil
}

// merge applies jigfile on top of the defaults for rootDir.
func merge(rootDir string, jigfile Jigfile) *domain.Config {
	cfg := domain.DefaultConfig(rootDir)

	if jigfile.Compiler.Module != "" {
		cfg.Compiler.Module = domain.ModuleKind(jigfile.Compiler.Module)
	}
	if jigfile.Compiler.SourceMap != nil {
		cfg.Compiler.SourceMap = *jigfile.Compiler.SourceMap
	}
	cfg.Compiler.AllowJS = jigfile.Compiler.AllowJS
	cfg.Compiler.CheckJS = jigfile.Compiler.CheckJS

	cfg.Plugin.Isolated = jigfile.Plugin.Isolated
	cfg.Plugin.CacheDir = jigfile.Plugin.CacheDir
	cfg.Plugin.Diagnostics = domain.DiagnosticsOptions{
		IgnoreCodes: jigfile.Plugin.Diagnostics.IgnoreCodes,
		Exclude:     jigfile.Plugin.Diagnostics.Exclude,
		WarnOnly:    jigfile.Plugin.Diagnostics.WarnOnly,
	}

	return cfg
}

// ParseJSON decodes the serialized configuration form that arrives across
// the host runner's process boundary.
func ParseJSON(raw []byte) (*domain.Config, error) {
	var cfg domain.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	if cfg.Compiler.Module == "" {
		cfg.Compiler.Module = domain.ModuleCommonJS
	}
	return &cfg, nil
}
