package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/klpartitioner/pkg/http"
	"github.com/lintang-b-s/klpartitioner/pkg/http/usecases"
	"github.com/lintang-b-s/klpartitioner/pkg/logger"
	"github.com/lintang-b-s/klpartitioner/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "enable per-client rate limiting")
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

	partitionService, err := usecases.NewPartitionService(logger,
		viper.GetInt("PARTITION_CACHE_SIZE"), viper.GetInt("MAX_NETLIST_EDGES"),
		viper.GetInt("MAX_NETLIST_VERTICES"))
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	srv, err := api.Use(ctx, logger, *useRateLimit, partitionService)
	if err != nil {
		panic(err)
	}

	go func() {
		if err := srv.Wait(); err != nil && err != context.Canceled {
			logger.Error("partition API stopped", zap.Error(err))
			cleanup()
		}
	}()

	signal := http.GracefulShutdown(ctx)

	logger.Info("klpartitioner Server Stopped", zap.Any("signal", signal))
	cleanup()
	_ = srv.Wait()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
