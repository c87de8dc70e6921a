package domain

import "fmt"

// Severity classifies a diagnostic.
type Severity uint8

const (
	// SeverityError indicates a diagnostic that normally fails the request.
	SeverityError Severity = iota
	// SeverityWarning indicates a non-fatal diagnostic.
	SeverityWarning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single compiler message tied to a source location.
type Diagnostic struct {
	// File is the absolute path of the file the diagnostic refers to.
	File string
	// Line is 1-based.
	Line int
	// Col is 1-based.
	Col int
	// Code is the numeric diagnostic code.
	Code int
	// Severity classifies the diagnostic.
	Severity Severity
	// Message is the human-readable text.
	Message string
}

// String renders the diagnostic in file:line:col form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d - %s TS%d: %s", d.File, d.Line, d.Col, d.Severity, d.Code, d.Message)
}

// CompileResult is the transient output of one compile request.
type CompileResult struct {
	// Code is the emitted executable source.
	Code string
	// SourceMap is the serialized source map, empty when maps are disabled.
	SourceMap string
	// Diagnostics lists the messages that survived the reporting policy.
	Diagnostics []Diagnostic
}

// OutputFile is one file produced by an emit request.
type OutputFile struct {
	// Name is the output file name, derived from the input path.
	Name string
	// Text is the file content.
	Text string
}

// EmitOutput is what the language service returns for one emit request.
type EmitOutput struct {
	// Skipped reports that emission was skipped entirely.
	Skipped bool
	// Files holds the emitted outputs, code first, source map adjacent.
	Files []OutputFile
}
