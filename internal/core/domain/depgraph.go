package domain

// DepGraphEntry records the last dependency resolution for one root file.
// If a later request carries byte-identical content, the stored reachable
// set is reused without re-scanning imports.
type DepGraphEntry struct {
	// Content is the file text the resolution was computed from.
	Content string
	// Resolved is the transitive reachable set, in discovery order,
	// deduplicated.
	Resolved []string
}
