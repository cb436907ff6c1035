package main

import (
	"flag"
	"os"

	"github.com/lintang-b-s/klpartitioner/pkg/logger"
	"github.com/lintang-b-s/klpartitioner/pkg/netlistparser"
	"github.com/lintang-b-s/klpartitioner/pkg/util"
	"go.uber.org/zap"
)

var (
	numVertices = flag.Int("vertices", 100, "number of vertices")
	numEdges    = flag.Int("edges", 300, "number of random edges (duplicates and self-loops included)")
	seed        = flag.Uint64("seed", 1, "random seed")
	output      = flag.String("output", "./data/random.net", "output netlist file")
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

	netlist, err := netlistparser.GenerateRandomNetlist(*numVertices, *numEdges, *seed)
	if err != nil {
		panic(err)
	}

	f, err := os.Create(*output)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	if err := netlistparser.WriteNetlist(f, netlist); err != nil {
		panic(err)
	}

	logger.Info("random netlist written",
		zap.String("output", *output),
		zap.Int("vertices", netlist.NumberOfVertices()),
		zap.Int("edges", netlist.NumberOfEdges()))
}
