package session

import (
	"errors"
	"sort"

	"github.com/dominikbraun/graph"
)

// dependents indexes which compiled files reach which dependencies. Edges
// run importer -> reachable file, over the flattened reachable set, so one
// predecessor lookup answers "who must be re-diagnosed when this changes"
// without walking the sets again.
type dependents struct {
	g graph.Graph[string, string]
}

func newDependents() *dependents {
	return &dependents{
		// Import cycles are legal, so the graph must tolerate them.
		g: graph.New(graph.StringHash, graph.Directed()),
	}
}

// record replaces the recorded reachable set of importer. Edges from a
// previous scan that are no longer reachable are removed, so a shrunken
// set stops triggering re-diagnosis.
func (d *dependents) record(importer string, reachable []string) {
	_ = d.g.AddVertex(importer)
	if adjacency, err := d.g.AdjacencyMap(); err == nil {
		for target := range adjacency[importer] {
			_ = d.g.RemoveEdge(importer, target)
		}
	}
	for _, target := range reachable {
		_ = d.g.AddVertex(target)
		if err := d.g.AddEdge(importer, target); err != nil &&
			!errors.Is(err, graph.ErrEdgeAlreadyExists) &&
			!errors.Is(err, graph.ErrEdgeCreatesCycle) {
			// Vertices were just added; nothing else can fail here.
			continue
		}
	}
}

// dependentsOf returns every importer whose reachable set contains path,
// sorted for deterministic re-diagnosis order.
func (d *dependents) dependentsOf(path string) []string {
	predecessors, err := d.g.PredecessorMap()
	if err != nil {
		return nil
	}
	edges, ok := predecessors[path]
	if !ok {
		return nil
	}
	importers := make([]string, 0, len(edges))
	for importer := range edges {
		importers = append(importers, importer)
	}
	sort.Strings(importers)
	return importers
}
