package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/lintang-b-s/klpartitioner/pkg/http/router/controllers"
	router_helper "github.com/lintang-b-s/klpartitioner/pkg/http/router/routerhelper"
	http_server "github.com/lintang-b-s/klpartitioner/pkg/http/server"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "net/http/pprof"
)

const defaultMaxBodyBytes = 8 << 20

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

//	@title			klpartitioner API
//	@version		1.0
//	@description	Kernighan-Lin two-way partitioning of circuit netlists.

//	@contact.name	Lintang Birda Saputra
//	@contact.url	_
//	@contact.email	lintang.birda.saputra@mail.ugm.ac.id

//	@license.name	BSD License
//	@license.url	https://opensource.org/license/bsd-2-clause

// @host		localhost
// @BasePath	/api
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	useRateLimit bool,
	partitionService controllers.PartitionService,
) error {
	log.Info("Run httprouter API")

	handler := api.Handler(config, useRateLimit, partitionService)

	srv := http_server.New(ctx, handler, config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		log.Info("Context canceled, shutting down server")
		_ = srv.Shutdown(context.Background())
		return ctx.Err()
	}
}

// Handler builds the routed API wrapped in the middleware chain.
func (api *API) Handler(
	config http_server.Config,
	useRateLimit bool,
	partitionService controllers.PartitionService,
) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)

	router.Handler(http.MethodGet, "/debug/pprof/*item", http.DefaultServeMux)

	group := router_helper.NewRouteGroup(router, "/api")

	maxBodyBytes := config.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	partitionRoutes := controllers.New(partitionService, api.log, maxBodyBytes)
	partitionRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic}
	if config.TrustProxyHeaders {
		mwChain = append(mwChain, RealIP)
	}
	mwChain = append(mwChain, Heartbeat("/api/healthz"), Logger(api.log))
	if useRateLimit {
		limiter := NewIPRateLimiter(config.RateLimitRPS, config.RateLimitBurst)
		mwChain = append(mwChain, limiter.Limit)
	}

	return alice.New(mwChain...).Then(router)
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
