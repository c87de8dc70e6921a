// Package report implements the diagnostics reporting policy.
package report

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter applies the configured diagnostics policy: which files get
// checked, which codes are ignored, and whether surviving diagnostics abort
// the request or only get logged.
type Reporter struct {
	opts    domain.DiagnosticsOptions
	checkJS bool
	logger  ports.Logger
}

// New creates a Reporter for one configuration.
func New(cfg *domain.Config, logger ports.Logger) *Reporter {
	return &Reporter{
		opts:    cfg.Plugin.Diagnostics,
		checkJS: cfg.Compiler.CheckJS,
		logger:  logger,
	}
}

// ShouldCheck reports whether diagnostics are computed for path at all.
// Declaration files are never checked; JavaScript files only under checkJs;
// excluded patterns are matched against both the full path and its basename.
func (r *Reporter) ShouldCheck(path string) bool {
	if domain.IsDeclarationFile(path) {
		return false
	}
	if domain.IsScriptFile(path) && !r.checkJS {
		return false
	}
	if domain.IsHybridFile(path) {
		return false
	}
	for _, pattern := range r.opts.Exclude {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return false
		}
		if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
			return false
		}
		// Directory-prefix exclusion, e.g. "generated/".
		if strings.HasSuffix(pattern, "/") && strings.Contains(filepath.ToSlash(path), "/"+strings.TrimSuffix(pattern, "/")+"/") {
			return false
		}
	}
	return true
}

// Filter drops diagnostics whose codes the configuration ignores.
func (r *Reporter) Filter(diags []domain.Diagnostic) []domain.Diagnostic {
	if len(r.opts.IgnoreCodes) == 0 {
		return diags
	}
	kept := make([]domain.Diagnostic, 0, len(diags))
	for _, d := range diags {
		if !slices.Contains(r.opts.IgnoreCodes, d.Code) {
			kept = append(kept, d)
		}
	}
	return kept
}

// Log writes the diagnostics as warnings without failing the request.
func (r *Reporter) Log(diags []domain.Diagnostic) {
	if len(diags) == 0 {
		return
	}
	r.logger.Warn(Format(diags))
}

// Report decides the final disposition. Under warnOnly every diagnostic is
// logged and the request continues; otherwise any error-severity diagnostic
// aborts.
func (r *Reporter) Report(diags []domain.Diagnostic) error {
	if len(diags) == 0 {
		return nil
	}
	if r.opts.WarnOnly {
		r.Log(diags)
		return nil
	}

	fatal := false
	for _, d := range diags {
		if d.Severity == domain.SeverityError {
			fatal = true
			break
		}
	}
	if !fatal {
		r.Log(diags)
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrDiagnostics, Format(diags)), "count", len(diags))
}
