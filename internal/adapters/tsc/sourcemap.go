package tsc

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
)

// sourceMapV3 is the serialized source map shape.
type sourceMapV3 struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// identitySourceMap builds the line-identity mapping for path. Erasure
// keeps every surviving byte at its original line and column, so each
// output line maps to the same input line at column zero.
func identitySourceMap(path string, content []byte) string {
	lines := bytes.Count(content, []byte{'\n'}) + 1

	var mappings strings.Builder
	for i := 0; i < lines; i++ {
		if i == 0 {
			// [generated col 0, source 0, source line 0, source col 0]
			mappings.WriteString("AAAA")
		} else {
			// Each subsequent line advances the source line by one.
			mappings.WriteString(";AACA")
		}
	}

	base := filepath.Base(path)
	m := sourceMapV3{
		Version:        3,
		File:           outputName(base),
		Sources:        []string{base},
		SourcesContent: []string{string(content)},
		Names:          []string{},
		Mappings:       mappings.String(),
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(raw)
}

// outputName maps a source file name to its emitted JavaScript name.
func outputName(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return path + ".js"
	}
	return strings.TrimSuffix(path, ext) + ".js"
}
