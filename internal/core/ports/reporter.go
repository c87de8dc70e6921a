package ports

import "go.trai.ch/jig/internal/core/domain"

// Reporter is the diagnostics policy. The compilation session never decides
// whether a diagnostic aborts the request; it hands the decision here so the
// session stays agnostic to user-facing verbosity settings.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// ShouldCheck reports whether diagnostics are computed for path at all.
	ShouldCheck(path string) bool
	// Filter drops diagnostics the configuration ignores (codes, patterns).
	Filter(diags []domain.Diagnostic) []domain.Diagnostic
	// Log writes the diagnostics to the logger without failing the request.
	Log(diags []domain.Diagnostic)
	// Report decides the final disposition: nil means logged-only, a non-nil
	// error aborts the request.
	Report(diags []domain.Diagnostic) error
}
