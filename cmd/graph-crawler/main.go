package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	v1 "github.com/tupyy/graph-crawler/api/v1"
	"github.com/tupyy/graph-crawler/internal/config"
	"github.com/tupyy/graph-crawler/internal/handlers"
	"github.com/tupyy/graph-crawler/internal/server"
	"github.com/tupyy/graph-crawler/internal/services"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/internal/store/migrations"
	"github.com/tupyy/graph-crawler/pkg/crawler"
	"github.com/tupyy/graph-crawler/pkg/runtime"
	"github.com/tupyy/graph-crawler/pkg/scheduler"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:          "graph-crawler",
		Short:        "Crawls a stored property graph behind a single-writer queue",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configFile)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the configuration file")

	return cmd
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	ctx := context.Background()

	db, err := store.NewDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Run(ctx, db); err != nil {
		return err
	}

	st := store.NewStore(db)
	w := writer.NewWithFactory(st, st.TxTaskFactory(),
		writer.WithQueueCapacity(cfg.Writer.QueueCapacity),
		writer.WithPollInterval(cfg.Writer.PollInterval),
	)

	pool := scheduler.NewScheduler(cfg.Crawler.NumWorkers)
	defer pool.Close()

	crawlerSvc := services.NewCrawlerService(st, w, pool, crawlOptions(cfg)...)

	rt := runtime.New(w)
	if err := rt.Register(crawlerSvc); err != nil {
		return err
	}
	if err := rt.Start(ctx); err != nil {
		return err
	}

	handler := handlers.New(w,
		services.NewGraphService(st),
		crawlerSvc,
		services.NewImporterService(w),
	)
	srv := server.NewServer(cfg, func(router *gin.RouterGroup) {
		v1.RegisterHandlers(router, handler)
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zap.S().Infow("shutting down", "signal", sig.String())
	case err := <-serverErr:
		zap.S().Errorw("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		zap.S().Errorw("failed to stop server", "error", err)
	}
	return rt.Stop(shutdownCtx)
}

func crawlOptions(cfg *config.Configuration) []crawler.Option {
	var opts []crawler.Option
	if len(cfg.Crawler.Labels) > 0 {
		opts = append(opts, crawler.WithStrategy(crawler.ByLabel(cfg.Crawler.Labels...)))
	}
	if cfg.Crawler.Throttle > 0 {
		opts = append(opts, crawler.WithThrottle(cfg.Crawler.Throttle))
	}
	if cfg.Crawler.MaxDepth > 0 {
		opts = append(opts, crawler.WithMaxDepth(cfg.Crawler.MaxDepth))
	}
	return opts
}

func newLogger(cfg *config.Configuration) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
