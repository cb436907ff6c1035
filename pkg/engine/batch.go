package engine

import (
	"context"
	"sort"

	"github.com/lintang-b-s/klpartitioner/pkg/concurrent"
	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
	"go.uber.org/zap"
)

type BatchResult struct {
	Input  string
	Output string
	Result *partitioner.PartitionResult
	Err    error
}

type batchJob struct {
	index int
	input string
}

type batchJobResult struct {
	index int
	BatchResult
}

// BatchPartitioner runs one independent Engine.PartitionFile per netlist on a worker pool.
type BatchPartitioner struct {
	engine     *Engine
	numWorkers int
	logger     *zap.Logger
}

func NewBatchPartitioner(engine *Engine, numWorkers int, logger *zap.Logger) *BatchPartitioner {
	return &BatchPartitioner{
		engine:     engine,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// Run returns one BatchResult per input, in input order. a failing netlist only sets
// its own Err.
func (bp *BatchPartitioner) Run(ctx context.Context, inputs []string) []BatchResult {
	jobs := make([]batchJob, len(inputs))
	for i, input := range inputs {
		jobs[i] = batchJob{index: i, input: input}
	}

	bp.logger.Info("starting batch partitioning", zap.Int("netlists", len(inputs)), zap.Int("workers", bp.numWorkers))

	partitionNetlist := func(ctx context.Context, job batchJob) batchJobResult {
		result, output, err := bp.engine.PartitionFile(ctx, job.input, "")
		if err != nil {
			bp.logger.Error("netlist partitioning failed", zap.String("file", job.input), zap.Error(err))
		}
		return batchJobResult{
			index: job.index,
			BatchResult: BatchResult{
				Input:  job.input,
				Output: output,
				Result: result,
				Err:    err,
			},
		}
	}

	jobResults := concurrent.RunAll(ctx, bp.numWorkers, jobs, partitionNetlist)
	sort.Slice(jobResults, func(i, j int) bool {
		return jobResults[i].index < jobResults[j].index
	})

	results := make([]BatchResult, len(jobResults))
	for i, jr := range jobResults {
		results[i] = jr.BatchResult
	}
	return results
}
