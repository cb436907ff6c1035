package datastructure

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ConnectedComponents returns the vertex ids of every connected component. ids are
// sorted inside a component and components are ordered by their smallest id.
func (g *Graph) ConnectedComponents() [][]int {
	if len(g.vertices) == 0 {
		return [][]int{}
	}

	// gonum node ids are the vertex insertion indices
	ug := simple.NewUndirectedGraph()
	for _, v := range g.vertices {
		ug.AddNode(simple.Node(int64(v.index)))
	}
	for _, e := range g.edges {
		ug.SetEdge(ug.NewEdge(simple.Node(int64(e.leftV.index)), simple.Node(int64(e.rightV.index))))
	}

	ccs := topo.ConnectedComponents(ug)
	components := make([][]int, 0, len(ccs))
	for _, cc := range ccs {
		component := make([]int, 0, len(cc))
		for _, node := range cc {
			component = append(component, g.vertices[node.ID()].id)
		}
		sort.Ints(component)
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
	return components
}
