package netlistparser

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/exp/rand"
)

// GenerateRandomNetlist draws numEdges edges between distinct vertices 1..numVertices.
// the same seed always gives the same netlist. vertices that no edge touches are not
// part of the netlist, the file format has no way to list them.
func GenerateRandomNetlist(numVertices, numEdges int, seed uint64) (*Netlist, error) {
	if numVertices < 2 && numEdges > 0 {
		return nil, fmt.Errorf("cannot draw %d edges between %d vertices", numEdges, numVertices)
	}

	rng := rand.New(rand.NewSource(seed))
	edges := make([][2]int, 0, numEdges)
	for len(edges) < numEdges {
		u := rng.Intn(numVertices) + 1
		v := rng.Intn(numVertices) + 1
		if u == v {
			continue
		}
		edges = append(edges, [2]int{u, v})
	}

	return NewNetlistFromEdges(edges), nil
}

// WriteNetlist writes one "left right" line per edge.
func WriteNetlist(out io.Writer, nl *Netlist) error {
	w := bufio.NewWriter(out)
	for _, e := range nl.Edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", e[0], e[1]); err != nil {
			return err
		}
	}
	return w.Flush()
}
