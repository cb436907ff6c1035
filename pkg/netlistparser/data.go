package netlistparser

import (
	"errors"

	"github.com/lintang-b-s/klpartitioner/pkg/datastructure"
)

var ErrMalformedLine = errors.New("malformed netlist line")

// Netlist is the raw reader output: vertex ids in first-seen order and the edge lines
// as they appear in the file, duplicates included.
type Netlist struct {
	VertexIds []int
	Edges     [][2]int
}

func NewNetlist() *Netlist {
	return &Netlist{
		VertexIds: make([]int, 0),
		Edges:     make([][2]int, 0),
	}
}

// NewNetlistFromEdges collects the vertex ids of edges in first-seen order.
func NewNetlistFromEdges(edges [][2]int) *Netlist {
	nl := NewNetlist()
	seen := make(map[int]struct{})
	for _, e := range edges {
		nl.addEdge(e[0], e[1], seen)
	}
	return nl
}

func (nl *Netlist) addEdge(leftId, rightId int, seen map[int]struct{}) {
	nl.Edges = append(nl.Edges, [2]int{leftId, rightId})
	if _, ok := seen[leftId]; !ok {
		nl.VertexIds = append(nl.VertexIds, leftId)
		seen[leftId] = struct{}{}
	}
	if _, ok := seen[rightId]; !ok {
		nl.VertexIds = append(nl.VertexIds, rightId)
		seen[rightId] = struct{}{}
	}
}

func (nl *Netlist) NumberOfVertices() int {
	return len(nl.VertexIds)
}

func (nl *Netlist) NumberOfEdges() int {
	return len(nl.Edges)
}

func (nl *Netlist) BuildGraph() (*datastructure.Graph, error) {
	return datastructure.NewGraph(nl.VertexIds, nl.Edges)
}
