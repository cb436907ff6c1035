package engine

import (
	"context"

	"github.com/lintang-b-s/klpartitioner/pkg/netlistparser"
	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
	"go.uber.org/zap"
)

// Engine glues the netlist reader, the Kernighan-Lin partitioner and the result writer.
type Engine struct {
	parser *netlistparser.NetlistParser
	logger *zap.Logger
}

func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		parser: netlistparser.NewNetlistParser(logger),
		logger: logger,
	}
}

// PartitionFile bisects the netlist in inputFile and writes the result to outputFile.
// an empty outputFile is derived from inputFile with partitioner.OutputFilename.
func (e *Engine) PartitionFile(ctx context.Context, inputFile, outputFile string) (*partitioner.PartitionResult, string, error) {
	if outputFile == "" {
		outputFile = partitioner.OutputFilename(inputFile)
	}

	graph, err := e.parser.ParseGraph(inputFile)
	if err != nil {
		return nil, outputFile, err
	}

	e.logger.Info("graph built",
		zap.String("file", inputFile),
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Int("components", len(graph.ConnectedComponents())))

	kl := partitioner.NewKernighanLin(graph, e.logger)
	result, err := kl.Partition(ctx)
	if err != nil {
		return nil, outputFile, err
	}

	e.logger.Info("writing partition", zap.String("output", outputFile))
	if err := result.WriteToFile(outputFile); err != nil {
		return nil, outputFile, err
	}
	return result, outputFile, nil
}
