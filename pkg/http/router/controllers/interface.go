package controllers

import (
	"context"

	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
)

type PartitionService interface {
	Partition(ctx context.Context, vertexIds []int, edges [][2]int) (*partitioner.PartitionResult, int, error)
}
