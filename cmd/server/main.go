package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/6394981696/Lecture-Scheduling/config"
	"github.com/6394981696/Lecture-Scheduling/internal/api/handler"
	"github.com/6394981696/Lecture-Scheduling/internal/api/router"
	"github.com/6394981696/Lecture-Scheduling/internal/apiclient"
	"github.com/6394981696/Lecture-Scheduling/internal/service"
	"github.com/6394981696/Lecture-Scheduling/internal/session"
	applogger "github.com/6394981696/Lecture-Scheduling/pkg/logger"
	"github.com/6394981696/Lecture-Scheduling/pkg/redis"
	"github.com/6394981696/Lecture-Scheduling/pkg/token"
)

func main() {
	// 1. load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config failed: %v\n", err)
		os.Exit(1)
	}

	// 2. initialize logging
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting up",
		zap.Int("port", cfg.Server.Port),
		zap.String("api", cfg.API.BaseURL),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. session store: Redis when available, in-memory otherwise
	var store session.Store
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory sessions", zap.Error(err))
		rdb = nil
		mem := session.NewMemoryStore(cfg.Session.TTL)
		defer mem.Close()
		store = mem
	} else {
		store = session.NewRedisStore(rdb, cfg.Session.TTL)
		defer rdb.Close()
	}

	// 4. session cookie token manager
	tokens := token.NewManager(&cfg.Session)

	// 5. upstream API client
	api := apiclient.New(&cfg.API, logger)

	// 6. services and handlers
	exportSvc := service.NewExportService(api, logger)
	h := handler.NewHandler(cfg, api, store, tokens, exportSvc, logger)

	// 7. routes
	engine, err := router.Setup(cfg, h, store, tokens, rdb, logger)
	if err != nil {
		logger.Fatal("building router failed", zap.Error(err))
	}

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 9. wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}
