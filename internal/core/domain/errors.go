package domain

import "go.trai.ch/zerr"

var (
	// ErrEmitSkipped is returned when the compiler service skipped emission
	// for a strictly-typed source file.
	ErrEmitSkipped = zerr.New("emit skipped for typed source file")

	// ErrNoEmitOutput is returned when executable output was requested for a
	// file that produces none, such as a declaration file.
	ErrNoEmitOutput = zerr.New("file produced no emit output")

	// ErrDiagnostics is returned when the reporting policy decides the
	// request must abort because of compiler diagnostics.
	ErrDiagnostics = zerr.New("compilation diagnostics reported")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigSourceEmpty is returned when a session is requested without a
	// live config or its serialized form.
	ErrConfigSourceEmpty = zerr.New("config source carries neither a live config nor serialized form")

	// ErrParseFailed is returned when the source text cannot be parsed at all.
	ErrParseFailed = zerr.New("failed to parse source")

	// ErrPostProcessFailed is returned when the optional post-process hook fails.
	ErrPostProcessFailed = zerr.New("post-process hook failed")
)
