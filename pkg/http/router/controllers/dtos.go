package controllers

import "github.com/lintang-b-s/klpartitioner/pkg/partitioner"

type partitionRequest struct {
	Vertices []int   `json:"vertices" validate:"omitempty,unique"`
	Edges    [][]int `json:"edges" validate:"required,dive,len=2"`
}

func (r partitionRequest) edgePairs() [][2]int {
	pairs := make([][2]int, len(r.Edges))
	for i, e := range r.Edges {
		pairs[i] = [2]int{e[0], e[1]}
	}
	return pairs
}

type swapResponse struct {
	FromA int `json:"from_a"`
	FromB int `json:"from_b"`
	Gain  int `json:"gain"`
}

type partitionResponse struct {
	CutSize        int            `json:"cut_size"`
	InitialCutSize int            `json:"initial_cut_size"`
	GroupA         []int          `json:"group_a"`
	GroupB         []int          `json:"group_b"`
	Iterations     int            `json:"iterations"`
	TotalGain      int            `json:"total_gain"`
	Swaps          []swapResponse `json:"swaps"`
	Components     int            `json:"components"`
}

func NewPartitionResponse(result *partitioner.PartitionResult, components int) partitionResponse {
	swaps := make([]swapResponse, len(result.Swaps))
	for i, s := range result.Swaps {
		swaps[i] = swapResponse{FromA: s.VertexA, FromB: s.VertexB, Gain: s.Gain}
	}
	return partitionResponse{
		CutSize:        result.CutSize,
		InitialCutSize: result.InitialCutSize,
		GroupA:         result.GroupA,
		GroupB:         result.GroupB,
		Iterations:     result.Iterations,
		TotalGain:      result.TotalGain,
		Swaps:          swaps,
		Components:     components,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
