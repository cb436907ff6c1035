package http

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	http_router "github.com/lintang-b-s/klpartitioner/pkg/http/router"
	"github.com/lintang-b-s/klpartitioner/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/klpartitioner/pkg/http/server"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log   *zap.Logger
	group *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use starts the partition API in the background. Wait blocks until it stops.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	partitionService controllers.PartitionService,
) (*Server, error) {
	config := http_server.Config{
		Port:              viper.GetInt("API_PORT"),
		Timeout:           viper.GetDuration("API_TIMEOUT"),
		MaxBodyBytes:      viper.GetInt64("API_MAX_BODY_BYTES"),
		RateLimitRPS:      viper.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:    viper.GetInt("RATE_LIMIT_BURST"),
		TrustProxyHeaders: viper.GetBool("TRUST_PROXY_HEADERS"),
	}

	server := http_router.NewAPI(log)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(
			gCtx, config, log,
			useRateLimit, partitionService,
		)
	})
	s.group = g

	return s, nil
}

func (s *Server) Wait() error {
	if s.group == nil {
		return nil
	}
	return s.group.Wait()
}

// GracefulShutdown blocks until SIGINT or SIGTERM arrives, or ctx is done (nil signal).
func GracefulShutdown(ctx context.Context) os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		return sig
	case <-ctx.Done():
		return nil
	}
}
