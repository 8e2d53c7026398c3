package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/locvowork/gestao_rh/internal/bootstrap"
	"github.com/locvowork/gestao_rh/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, err, "Failed to initialize application")
		panic(err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.ErrorLog(ctx, err, "Server stopped")
		}
	case <-ctx.Done():
		logger.InfoLog(context.Background(), "Shutting down")
	}

	if err := app.Shutdown(context.Background()); err != nil {
		logger.ErrorLog(context.Background(), err, "Shutdown failed")
	}
}
