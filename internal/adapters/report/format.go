package report

import (
	"fmt"
	"strings"

	"go.trai.ch/jig/internal/core/domain"
)

// Format renders diagnostics as a multi-line block, one location per line,
// with a trailing summary when more than one diagnostic is present.
func Format(diags []domain.Diagnostic) string {
	var b strings.Builder
	for i, d := range diags {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:%d:%d - %s TS%d: %s", d.File, d.Line, d.Col, d.Severity, d.Code, d.Message)
	}
	if len(diags) > 1 {
		errors, warnings := 0, 0
		for _, d := range diags {
			if d.Severity == domain.SeverityError {
				errors++
			} else {
				warnings++
			}
		}
		fmt.Fprintf(&b, "\n\nfound %d errors and %d warnings", errors, warnings)
	}
	return b.String()
}
