package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/lintang-b-s/klpartitioner/pkg"
	"github.com/lintang-b-s/klpartitioner/pkg/engine"
	"github.com/lintang-b-s/klpartitioner/pkg/logger"
	"github.com/lintang-b-s/klpartitioner/pkg/partitioner"
	"github.com/lintang-b-s/klpartitioner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	input  = flag.String("input", pkg.DEFAULT_INPUT_FILENAME, "netlist file(s), comma separated. .bz2 files are decompressed")
	output = flag.String("output", "", "output file for a single input (default: kernighan_lin_out_<stem>.txt next to the input)")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	inputs := splitInputs(*input)
	if len(inputs) == 0 {
		panic(fmt.Errorf("no input netlist given"))
	}

	ctx := context.Background()
	e := engine.NewEngine(logger)

	if len(inputs) == 1 {
		result, outputFile, err := e.PartitionFile(ctx, inputs[0], *output)
		if err != nil {
			panic(err)
		}
		printResult(inputs[0], outputFile, result)
		return
	}

	if *output != "" {
		logger.Warn("-output is ignored when several inputs are given")
	}

	bp := engine.NewBatchPartitioner(e, viper.GetInt("BATCH_WORKERS"), logger)
	failed := 0
	for _, br := range bp.Run(ctx, inputs) {
		if br.Err != nil {
			failed++
			logger.Error("partitioning failed", zap.String("input", br.Input), zap.Error(br.Err))
			continue
		}
		printResult(br.Input, br.Output, br.Result)
	}
	if failed > 0 {
		panic(fmt.Errorf("%d of %d netlists failed", failed, len(inputs)))
	}
}

func splitInputs(s string) []string {
	inputs := make([]string, 0)
	for _, in := range strings.Split(s, ",") {
		in = strings.TrimSpace(in)
		if in != "" {
			inputs = append(inputs, in)
		}
	}
	return inputs
}

func printResult(inputFile, outputFile string, result *partitioner.PartitionResult) {
	fmt.Printf("%s -> %s\n", inputFile, outputFile)
	fmt.Printf("cut size: %d\n", result.GetCutSize())
	fmt.Printf("group A: %v\n", result.GetGroupA())
	fmt.Printf("group B: %v\n", result.GetGroupB())
}
