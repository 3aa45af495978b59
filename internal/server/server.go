// Package server exposes the computation engines over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/taxledger/internal/books"
	"github.com/smallbiznis/taxledger/internal/books/refresh"
	"github.com/smallbiznis/taxledger/internal/clock"
	"github.com/smallbiznis/taxledger/internal/config"
	"github.com/smallbiznis/taxledger/internal/depreciation"
	obsmiddleware "github.com/smallbiznis/taxledger/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/taxledger/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RegisterRoutes),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with the standard middleware chain.
func NewEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           cfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	engineCfg *config.EngineConfigHolder
	log       *zap.Logger
	booksCli  *books.Client
	deprSvc   *depreciation.Service
	clock     clock.Clock

	// one guard per reconciliation view; stale recomputes are discarded
	arGuard refresh.Guard
	apGuard refresh.Guard
}

type ServerParams struct {
	fx.In

	Engine    *gin.Engine
	Cfg       config.Config
	EngineCfg *config.EngineConfigHolder
	Log       *zap.Logger
	BooksCli  *books.Client
	DeprSvc   *depreciation.Service
	Clock     clock.Clock
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:    p.Engine,
		cfg:       p.Cfg,
		engineCfg: p.EngineCfg,
		log:       p.Log.Named("server"),
		booksCli:  p.BooksCli,
		deprSvc:   p.DeprSvc,
		clock:     p.Clock,
	}
}

// RegisterRoutes mounts the engine API.
func RegisterRoutes(s *Server) {
	v1 := s.engine.Group("/v1")

	v1.POST("/gst/classify", s.ClassifyGST)
	v1.POST("/gst/apply-rates", s.ApplyGSTRates)
	v1.POST("/gst/verify", s.VerifyGSTIN)
	v1.POST("/totals", s.ComputeTotals)

	v1.GET("/assets/:id/depreciation", s.AssetDepreciation)
	v1.POST("/depreciation/run-monthly", s.RunMonthlyDepreciation)

	v1.GET("/receivables", s.Receivables)
	v1.GET("/payables", s.Payables)

	v1.GET("/compliance/gst", s.GSTCompliance)
	v1.GET("/compliance/tds", s.TDSCompliance)

	v1.GET("/tax-report/summary", s.TaxReportSummary)
}

// session derives the per-request books session from the incoming bearer
// token. The engine never holds ambient auth state.
func (s *Server) session(c *gin.Context) books.Session {
	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return books.Session{Token: auth[len(prefix):]}
	}
	return books.Session{}
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
