package resolver

import (
	"errors"

	graphlib "github.com/dominikbraun/graph"
)

// ImportGraph is an auxiliary, driver-facing directed graph over source
// names, built incrementally as resolveImport discovers edges. It plays no
// role in resolution itself; a driver can use it to report import cycles or
// export the traversal it drove.
type ImportGraph struct {
	g graphlib.Graph[string, string]
}

func newImportGraph() *ImportGraph {
	return &ImportGraph{g: graphlib.New(graphlib.StringHash, graphlib.Directed())}
}

func (ig *ImportGraph) addEdge(from, to string) {
	if err := ig.g.AddVertex(from); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return
	}
	if err := ig.g.AddVertex(to); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return
	}
	if err := ig.g.AddEdge(from, to); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		return
	}
}

// Cycles reports every import cycle discovered so far, as the strongly
// connected components of size greater than one.
func (ig *ImportGraph) Cycles() ([][]string, error) {
	components, err := graphlib.StronglyConnectedComponents(ig.g)
	if err != nil {
		return nil, err
	}

	var cycles [][]string
	for _, component := range components {
		if len(component) > 1 {
			cycles = append(cycles, component)
		}
	}
	return cycles, nil
}

// HasCycle reports whether any import cycle has been discovered so far.
func (ig *ImportGraph) HasCycle() (bool, error) {
	cycles, err := ig.Cycles()
	if err != nil {
		return false, err
	}
	return len(cycles) > 0, nil
}

// Edges returns every discovered (from, to) edge, for drivers that want to
// render the traversal.
func (ig *ImportGraph) Edges() ([]graphlib.Edge[string], error) {
	return ig.g.Edges()
}
