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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"instagram/config"
	"instagram/handlers"
	"instagram/middleware"
	"instagram/objectstore"
	"instagram/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		gin.SetMode(gin.DebugMode)
		return zap.NewDevelopment()
	}
	gin.SetMode(gin.ReleaseMode)
	return zap.NewProduction()
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	db, err := store.Open(cfg.DatabaseURL, store.Options{Log: zap.NewStdLog(log.Named("gorm"))})
	if err != nil {
		return err
	}
	defer db.Close()

	var uploads handlers.Uploader
	if cfg.Minio.UploadsEnabled() {
		m, err := objectstore.New(ctx, objectstore.Config{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
			PublicURL: cfg.Minio.PublicURL,
		})
		if err != nil {
			return err
		}
		uploads = m
		log.Info("media uploads enabled", zap.String("bucket", cfg.Minio.Bucket))
	}

	h := handlers.New(db, uploads, log)
	router := handlers.NewRouter(h, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORS(cfg.CORSAllowedOrigins)(middleware.TrimTrailingSlash(router)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("port", cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}
