package partitioner

import (
	"context"

	"github.com/lintang-b-s/klpartitioner/pkg/datastructure"
	"github.com/lintang-b-s/klpartitioner/pkg/util"
	"go.uber.org/zap"
)

type KernighanLin struct {
	graph    *datastructure.Graph
	logger   *zap.Logger
	traceCut bool
}

func NewKernighanLin(graph *datastructure.Graph, logger *zap.Logger, opts ...Option) *KernighanLin {
	kl := &KernighanLin{
		graph:  graph,
		logger: logger,
	}
	for _, opt := range opts {
		opt(kl)
	}
	return kl
}

/*
Partition. [An Efficient Heuristic Procedure for Partitioning Graphs, B. W. Kernighan & S. Lin, 1970]

starts from the positional bisection and, for at most floor(n/2) outer iterations,
recomputes every D-value, commits the best single (a, b) swap and stops as soon as
the best gain is not positive. labels of the graph vertices are overwritten.

time complexity: O(|A|*|B| + |V| + |E|) per outer iteration, O(n^3) worst case.
*/
func (kl *KernighanLin) Partition(ctx context.Context) (*PartitionResult, error) {
	kl.initialBisection()

	initialCut, err := kl.graph.CutCost()
	if err != nil {
		return nil, err
	}

	result := &PartitionResult{
		InitialCutSize: initialCut,
		Swaps:          make([]Swap, 0),
		CutTrace:       make([]int, 0),
	}

	maxIterations := kl.graph.NumberOfVertices() / 2

	kl.logger.Info("running kernighan-lin bisection",
		zap.Int("vertices", kl.graph.NumberOfVertices()),
		zap.Int("edges", kl.graph.NumberOfEdges()),
		zap.Int("initial_cut", initialCut),
		zap.Int("max_iterations", maxIterations))

	for i := 0; i < maxIterations; i++ {
		if util.StopConcurrentOperation(ctx) {
			return nil, ctx.Err()
		}
		result.Iterations++

		gt := newGainTable(kl.graph)
		best, ok, err := gt.bestSwap(ctx)
		if err != nil {
			return nil, err
		}
		if !ok || best.gain <= 0 {
			break
		}

		gt.swap(best)

		result.Swaps = append(result.Swaps, Swap{
			VertexA: best.a.GetID(),
			VertexB: best.b.GetID(),
			Gain:    best.gain,
		})
		result.TotalGain += best.gain

		if kl.traceCut {
			cut, err := kl.graph.CutCost()
			if err != nil {
				return nil, err
			}
			result.CutTrace = append(result.CutTrace, cut)
		}

		kl.logger.Debug("swapped vertices",
			zap.Int("iteration", i),
			zap.Int("from_a", best.a.GetID()),
			zap.Int("from_b", best.b.GetID()),
			zap.Int("gain", best.gain))
	}

	result.CutSize, err = kl.graph.CutCost()
	if err != nil {
		return nil, err
	}
	result.GroupA = kl.graph.VertexIdsInPartition(datastructure.PARTITION_A)
	result.GroupB = kl.graph.VertexIdsInPartition(datastructure.PARTITION_B)

	kl.logger.Info("kernighan-lin bisection done",
		zap.Int("cut", result.CutSize),
		zap.Int("iterations", result.Iterations),
		zap.Int("swaps", len(result.Swaps)),
		zap.Int("total_gain", result.TotalGain))

	return result, nil
}

// initialBisection puts the first floor(n/2) vertices in A and the rest in B,
// so B gets the extra vertex when n is odd.
func (kl *KernighanLin) initialBisection() {
	vertices := kl.graph.GetVertices()
	half := len(vertices) / 2
	for i, v := range vertices {
		if i < half {
			v.SetPartitionLabel(datastructure.PARTITION_A)
		} else {
			v.SetPartitionLabel(datastructure.PARTITION_B)
		}
	}
}

type candidateSwap struct {
	a, b *datastructure.Vertex
	gain int
}

// gainTable holds the D-values of one outer iteration, indexed by vertex insertion index.
type gainTable struct {
	graph   *datastructure.Graph
	dValues []int
	locked  []bool
}

func newGainTable(graph *datastructure.Graph) *gainTable {
	gt := &gainTable{
		graph:   graph,
		dValues: make([]int, graph.NumberOfVertices()),
		locked:  make([]bool, graph.NumberOfVertices()),
	}
	graph.ForEachVertices(func(v *datastructure.Vertex) {
		gt.dValues[v.GetIndex()] = computeDValue(v)
	})
	return gt
}

// computeDValue = external cost - internal cost of v.
func computeDValue(v *datastructure.Vertex) int {
	d := 0
	v.ForEachNeighbor(func(u *datastructure.Vertex) {
		if u.GetPartitionLabel() != v.GetPartitionLabel() {
			d++
		} else {
			d--
		}
	})
	return d
}

func edgeIndicator(u, v *datastructure.Vertex) int {
	if u.IsAdjacent(v.GetID()) {
		return 1
	}
	return 0
}

func (gt *gainTable) dValue(v *datastructure.Vertex) int {
	return gt.dValues[v.GetIndex()]
}

func (gt *gainTable) gain(a, b *datastructure.Vertex) int {
	return gt.dValue(a) + gt.dValue(b) - 2*edgeIndicator(a, b)
}

func (gt *gainTable) unlockedGroups() ([]*datastructure.Vertex, []*datastructure.Vertex) {
	groupA := make([]*datastructure.Vertex, 0, gt.graph.NumberOfVertices()/2)
	groupB := make([]*datastructure.Vertex, 0, gt.graph.NumberOfVertices()/2+1)
	gt.graph.ForEachVertices(func(v *datastructure.Vertex) {
		if gt.locked[v.GetIndex()] {
			return
		}
		switch v.GetPartitionLabel() {
		case datastructure.PARTITION_A:
			groupA = append(groupA, v)
		case datastructure.PARTITION_B:
			groupB = append(groupB, v)
		}
	})
	return groupA, groupB
}

// bestSwap scans pairs with A in the outer loop and B in the inner loop, both in graph
// insertion order, and keeps the first pair reaching the maximum gain.
// ctx is checked once per row of A.
func (gt *gainTable) bestSwap(ctx context.Context) (candidateSwap, bool, error) {
	groupA, groupB := gt.unlockedGroups()

	var (
		best  candidateSwap
		found bool
	)
	for _, a := range groupA {
		if util.StopConcurrentOperation(ctx) {
			return candidateSwap{}, false, ctx.Err()
		}
		for _, b := range groupB {
			gain := gt.gain(a, b)
			if !found || gain > best.gain {
				best = candidateSwap{a: a, b: b, gain: gain}
				found = true
			}
		}
	}
	return best, found, nil
}

/*
swap flips the labels of s.a (A -> B) and s.b (B -> A), locks both and updates the
D-values of the remaining vertices:

	x in A: D(x) += 2*c(x, a) - 2*c(x, b)
	y in B: D(y) += 2*c(y, b) - 2*c(y, a)

c(x, v) is zero unless x is a neighbor of a or b, so only those neighbors are visited.
*/
func (gt *gainTable) swap(s candidateSwap) {
	s.a.SetPartitionLabel(datastructure.PARTITION_B)
	s.b.SetPartitionLabel(datastructure.PARTITION_A)
	gt.locked[s.a.GetIndex()] = true
	gt.locked[s.b.GetIndex()] = true

	s.a.ForEachNeighbor(func(x *datastructure.Vertex) {
		if gt.locked[x.GetIndex()] {
			return
		}
		if x.GetPartitionLabel() == datastructure.PARTITION_A {
			gt.dValues[x.GetIndex()] += 2
		} else {
			gt.dValues[x.GetIndex()] -= 2
		}
	})

	s.b.ForEachNeighbor(func(y *datastructure.Vertex) {
		if gt.locked[y.GetIndex()] {
			return
		}
		if y.GetPartitionLabel() == datastructure.PARTITION_B {
			gt.dValues[y.GetIndex()] += 2
		} else {
			gt.dValues[y.GetIndex()] -= 2
		}
	})
}
