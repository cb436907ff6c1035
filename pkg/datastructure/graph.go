package datastructure

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVertex    = errors.New("edge references unknown vertex")
	ErrUnassignedVertex = errors.New("vertex has no partition label")
)

type PartitionLabel uint8

const (
	UNASSIGNED PartitionLabel = iota
	PARTITION_A
	PARTITION_B
)

func (p PartitionLabel) String() string {
	switch p {
	case PARTITION_A:
		return "A"
	case PARTITION_B:
		return "B"
	default:
		return "UNASSIGNED"
	}
}

// Opposite returns the other side of the bisection. UNASSIGNED stays UNASSIGNED.
func (p PartitionLabel) Opposite() PartitionLabel {
	switch p {
	case PARTITION_A:
		return PARTITION_B
	case PARTITION_B:
		return PARTITION_A
	default:
		return UNASSIGNED
	}
}

type Vertex struct {
	id             int
	index          int // position in graph.vertices (insertion order)
	edges          []*Edge
	neighbors      map[int]struct{}
	partitionLabel PartitionLabel
}

func NewVertex(id, index int) *Vertex {
	return &Vertex{
		id:        id,
		index:     index,
		edges:     make([]*Edge, 0),
		neighbors: make(map[int]struct{}),
	}
}

func (v *Vertex) GetID() int {
	return v.id
}

func (v *Vertex) GetIndex() int {
	return v.index
}

func (v *Vertex) GetEdges() []*Edge {
	return v.edges
}

func (v *Vertex) Degree() int {
	return len(v.edges)
}

func (v *Vertex) GetPartitionLabel() PartitionLabel {
	return v.partitionLabel
}

func (v *Vertex) SetPartitionLabel(label PartitionLabel) {
	v.partitionLabel = label
}

// IsAdjacent reports whether there is an edge between v and the vertex with id u. O(1).
func (v *Vertex) IsAdjacent(u int) bool {
	_, ok := v.neighbors[u]
	return ok
}

// ForEachNeighbor calls handle for every neighbor of v, in edge insertion order.
func (v *Vertex) ForEachNeighbor(handle func(u *Vertex)) {
	for _, e := range v.edges {
		handle(e.Other(v))
	}
}

// addEdge links e to v unless v already has an edge to the same neighbor.
func (v *Vertex) addEdge(e *Edge) bool {
	other := e.Other(v)
	if v.IsAdjacent(other.id) {
		return false
	}
	v.edges = append(v.edges, e)
	v.neighbors[other.id] = struct{}{}
	return true
}

type Edge struct {
	leftId, rightId int
	leftV, rightV   *Vertex
}

func NewEdge(leftId, rightId int) *Edge {
	return &Edge{
		leftId:  leftId,
		rightId: rightId,
	}
}

func (e *Edge) GetLeftID() int {
	return e.leftId
}

func (e *Edge) GetRightID() int {
	return e.rightId
}

func (e *Edge) GetLeftVertex() *Vertex {
	return e.leftV
}

func (e *Edge) GetRightVertex() *Vertex {
	return e.rightV
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.rightV == v {
		return e.leftV
	}
	return e.rightV
}

func (e *Edge) IsCut() bool {
	return e.leftV.partitionLabel != e.rightV.partitionLabel
}

// Graph is an undirected netlist graph with at most one edge per unordered vertex pair.
// vertices and edges keep the first-seen order of the input.
type Graph struct {
	vertices   []*Vertex
	edges      []*Edge
	vertexById map[int]*Vertex
}

/*
NewGraph. builds a fully linked graph from a vertex id list and an edge list.

repeated vertex ids keep their first position. an edge whose endpoints are already
connected (in either direction) is dropped, and so is a self-loop, since it can never be
cut. an edge that names an id absent from vertexIds fails the whole build with
ErrUnknownVertex.

time complexity: O(|V| + |E|)
*/
func NewGraph(vertexIds []int, edges [][2]int) (*Graph, error) {
	g := &Graph{
		vertices:   make([]*Vertex, 0, len(vertexIds)),
		edges:      make([]*Edge, 0, len(edges)),
		vertexById: make(map[int]*Vertex, len(vertexIds)),
	}

	for _, id := range vertexIds {
		if _, ok := g.vertexById[id]; ok {
			continue
		}
		v := NewVertex(id, len(g.vertices))
		g.vertices = append(g.vertices, v)
		g.vertexById[id] = v
	}

	for _, pair := range edges {
		if err := g.addEdge(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func (g *Graph) addEdge(leftId, rightId int) error {
	left, ok := g.vertexById[leftId]
	if !ok {
		return fmt.Errorf("edge (%d, %d): vertex %d: %w", leftId, rightId, leftId, ErrUnknownVertex)
	}
	right, ok := g.vertexById[rightId]
	if !ok {
		return fmt.Errorf("edge (%d, %d): vertex %d: %w", leftId, rightId, rightId, ErrUnknownVertex)
	}

	if leftId == rightId || left.IsAdjacent(rightId) {
		return nil
	}

	e := NewEdge(leftId, rightId)
	e.leftV = left
	e.rightV = right
	left.addEdge(e)
	right.addEdge(e)
	g.edges = append(g.edges, e)
	return nil
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *Graph) GetVertices() []*Vertex {
	return g.vertices
}

func (g *Graph) GetEdges() []*Edge {
	return g.edges
}

func (g *Graph) GetVertex(id int) (*Vertex, bool) {
	v, ok := g.vertexById[id]
	return v, ok
}

func (g *Graph) GetVertexIds() []int {
	ids := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.id
	}
	return ids
}

// AreAdjacent reports whether u and v are joined by an edge. unknown ids are never adjacent.
func (g *Graph) AreAdjacent(u, v int) bool {
	uVertex, ok := g.vertexById[u]
	if !ok {
		return false
	}
	return uVertex.IsAdjacent(v)
}

// CutCost counts edges whose endpoints carry different partition labels.
// every vertex must already be labelled A or B.
func (g *Graph) CutCost() (int, error) {
	for _, v := range g.vertices {
		if v.partitionLabel == UNASSIGNED {
			return 0, fmt.Errorf("vertex %d: %w", v.id, ErrUnassignedVertex)
		}
	}

	cut := 0
	for _, e := range g.edges {
		if e.IsCut() {
			cut++
		}
	}
	return cut, nil
}

func (g *Graph) ResetPartitionLabels() {
	for _, v := range g.vertices {
		v.partitionLabel = UNASSIGNED
	}
}

// VertexIdsInPartition returns the ids labelled label, in insertion order.
func (g *Graph) VertexIdsInPartition(label PartitionLabel) []int {
	ids := make([]int, 0, len(g.vertices)/2+1)
	for _, v := range g.vertices {
		if v.partitionLabel == label {
			ids = append(ids, v.id)
		}
	}
	return ids
}

func (g *Graph) ForEachVertices(handle func(v *Vertex)) {
	for _, v := range g.vertices {
		handle(v)
	}
}
