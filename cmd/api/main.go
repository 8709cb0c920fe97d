package main

import (
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"Quill/internal/api/config"
	"Quill/internal/pkg/logger"
	"Quill/internal/pkg/mongo"
	"Quill/internal/pkg/security"
	"Quill/internal/wire"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger()

	// 令牌签发配置
	security.Configure(cfg.JWT)

	// Mongo 连接
	db, err := mongo.InitMongo(cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}

	// 依赖注入
	app, err := wire.BuildApplication(db)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// HTTP 服务器
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: app.Router,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err = srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		if err = app.DB.Client().Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
