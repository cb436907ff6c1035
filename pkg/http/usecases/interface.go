package usecases

import (
	"context"

	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
)

type Partitioner interface {
	Partition(ctx context.Context) (*partitioner.PartitionResult, error)
}
