package app

import (
	"context"
	"time"

	"skill-match/internal/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Serve runs the HTTP server until ctx is canceled or the listener fails,
// then shuts down gracefully.
func Serve(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	addr, err := ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	c, err := NewContainer(cfg, log)
	if err != nil {
		return err
	}

	app, cleanup, err := Bootstrap(c)
	if err != nil {
		_ = c.Close()
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			log.Warn("cleanup", zap.Error(err))
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr), zap.String("env", cfg.App.Environment))
		errCh <- app.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.Fiber.ShutdownWithContext(shutdownCtx)
	}
}
