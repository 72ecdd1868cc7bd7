package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/jengzang/attraction-heatmap/internal/api"
	"github.com/jengzang/attraction-heatmap/internal/config"
	"github.com/jengzang/attraction-heatmap/internal/dashboard"
	"github.com/jengzang/attraction-heatmap/internal/database"
	"github.com/jengzang/attraction-heatmap/internal/dataset"
	"github.com/jengzang/attraction-heatmap/internal/handler"
	"github.com/jengzang/attraction-heatmap/internal/logger"
	"github.com/jengzang/attraction-heatmap/internal/metrics"
	"github.com/jengzang/attraction-heatmap/internal/middleware"
	"github.com/jengzang/attraction-heatmap/internal/repository"
	"github.com/jengzang/attraction-heatmap/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML/JSON config file")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New("attraction-heatmap", cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	source, closeSource := openSource(cfg, zlog)
	defer closeSource()

	cache := dataset.NewCache(source, zlog, m)
	// The dataset schema is a hard precondition: refuse to start without it
	if _, err := cache.Get(ctx); err != nil {
		zlog.Fatal("Failed to load dataset", zap.Error(err))
	}

	if cfg.Dataset.Source == "csv" && cfg.Dataset.Watch {
		watcher := dataset.NewWatcher(cfg.Dataset.CSVPath, cache, zlog)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				zlog.Error("dataset watcher stopped", zap.Error(err))
			}
		}()
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	go limiter.Run(ctx.Done())

	svc := service.NewDashboardService(cache, dashboard.Options{
		ChartsFollowFilters: cfg.Dashboard.ChartsFollowFilters,
	}, m)

	gin.SetMode(cfg.Server.Mode)
	// 初始化路由
	router := api.SetupRouter(api.Deps{
		Config:    cfg,
		Logger:    zlog,
		Metrics:   m,
		Gatherer:  reg,
		Limiter:   limiter,
		Dashboard: handler.NewDashboardHandler(svc),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zlog.Info("Server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// openSource builds the configured dataset source and returns its cleanup func
func openSource(cfg *config.Config, zlog *zap.Logger) (dataset.Source, func()) {
	if cfg.Dataset.Source == "csv" {
		return dataset.NewCSVSource(cfg.Dataset.CSVPath), func() {}
	}

	db, err := database.Open(database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		zlog.Fatal("Failed to initialize database", zap.Error(err))
	}

	applied, err := database.NewMigrationManager(db, cfg.Database.Driver, database.Migrations).Migrate()
	if err != nil {
		zlog.Fatal("Failed to migrate database", zap.Error(err))
	}
	zlog.Info("Database ready", zap.String("driver", cfg.Database.Driver), zap.Int("migrations_applied", applied))

	repo := repository.NewAttractionRepository(db, cfg.Database.Driver)
	return dataset.NewSQLSource(repo, cfg.Database.Driver), func() { db.Close() }
}
