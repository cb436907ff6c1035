package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/klpartitioner/pkg/datastructure"
	"github.com/lintang-b-s/klpartitioner/pkg/netlistparser"
	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
	"github.com/lintang-b-s/klpartitioner/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrNetlistTooLarge = errors.New("netlist is too large")
)

type cachedPartition struct {
	result     *partitioner.PartitionResult
	components int
}

type PartitionService struct {
	log            *zap.Logger
	cache          *lru.Cache[string, cachedPartition]
	maxEdges       int
	maxVertices    int
	newPartitioner func(graph *datastructure.Graph, logger *zap.Logger) Partitioner
}

func NewPartitionService(log *zap.Logger, cacheSize, maxEdges, maxVertices int) (*PartitionService, error) {
	cache, err := lru.New[string, cachedPartition](cacheSize)
	if err != nil {
		return nil, err
	}
	return &PartitionService{
		log:         log,
		cache:       cache,
		maxEdges:    maxEdges,
		maxVertices: maxVertices,
		newPartitioner: func(graph *datastructure.Graph, logger *zap.Logger) Partitioner {
			return partitioner.NewKernighanLin(graph, logger)
		},
	}, nil
}

// Partition bisects the netlist given by vertexIds and edges. an empty vertexIds is
// filled from the edges in first-seen order. netlists above maxEdges or maxVertices fail
// with ErrBadParamInput before a graph is built. it returns the result and the number of
// connected components. results are cached by netlist, callers must not modify them.
func (ps *PartitionService) Partition(ctx context.Context, vertexIds []int, edges [][2]int) (*partitioner.PartitionResult, int, error) {
	if len(edges) > ps.maxEdges {
		return nil, 0, util.WrapErrorf(ErrNetlistTooLarge, util.ErrBadParamInput,
			"netlist has %d edges, at most %d are accepted", len(edges), ps.maxEdges)
	}

	if len(vertexIds) == 0 {
		vertexIds = netlistparser.NewNetlistFromEdges(edges).VertexIds
	}
	if len(vertexIds) > ps.maxVertices {
		return nil, 0, util.WrapErrorf(ErrNetlistTooLarge, util.ErrBadParamInput,
			"netlist has %d vertices, at most %d are accepted", len(vertexIds), ps.maxVertices)
	}

	key := netlistKey(vertexIds, edges)
	if cached, ok := ps.cache.Get(key); ok {
		ps.log.Debug("partition cache hit", zap.Int("vertices", len(vertexIds)), zap.Int("edges", len(edges)))
		return cached.result, cached.components, nil
	}

	graph, err := datastructure.NewGraph(vertexIds, edges)
	if err != nil {
		return nil, 0, util.WrapErrorf(err, util.ErrBadParamInput, "invalid netlist")
	}

	result, err := ps.newPartitioner(graph, ps.log).Partition(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, 0, util.WrapErrorf(err, util.ErrCanceled, "partitioning canceled")
		}
		return nil, 0, util.WrapErrorf(err, util.ErrInternalServerError, "partitioning failed")
	}

	components := len(graph.ConnectedComponents())
	ps.cache.Add(key, cachedPartition{result: result, components: components})
	return result, components, nil
}

func netlistKey(vertexIds []int, edges [][2]int) string {
	var sb strings.Builder
	sb.Grow(4 * (len(vertexIds) + 2*len(edges)))
	for _, id := range vertexIds {
		sb.WriteString(strconv.Itoa(id))
		sb.WriteByte(',')
	}
	sb.WriteByte('|')
	for _, e := range edges {
		sb.WriteString(fmt.Sprintf("%d-%d,", e[0], e[1]))
	}
	return sb.String()
}
