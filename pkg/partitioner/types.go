package partitioner

// Swap is one accepted exchange: VertexA moved from A to B and VertexB from B to A.
type Swap struct {
	VertexA int
	VertexB int
	Gain    int
}

type PartitionResult struct {
	CutSize        int
	InitialCutSize int
	GroupA         []int // vertex ids in partition A, graph insertion order
	GroupB         []int
	Iterations     int // outer iterations started, including the one that stopped on gain <= 0
	TotalGain      int
	Swaps          []Swap
	CutTrace       []int // cut cost after every accepted swap, only filled with WithCutTrace
}

func (pr *PartitionResult) GetCutSize() int {
	return pr.CutSize
}

func (pr *PartitionResult) GetGroupA() []int {
	return pr.GroupA
}

func (pr *PartitionResult) GetGroupB() []int {
	return pr.GroupB
}

type Option func(kl *KernighanLin)

// WithCutTrace makes the engine recompute the full cut cost after every accepted swap.
// O(|E|) per swap, meant for debugging and tests.
func WithCutTrace() Option {
	return func(kl *KernighanLin) {
		kl.traceCut = true
	}
}
