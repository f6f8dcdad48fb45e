package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// runUntilSignal runs every task under one context that is cancelled on SIGINT/SIGTERM
// or when any task fails, and waits for all of them to return.
func runUntilSignal(logger *zap.Logger, tasks ...func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runTasks(ctx, logger, tasks...)
}

func runTasks(ctx context.Context, logger *zap.Logger, tasks ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task(gctx)
		})
	}

	<-gctx.Done()
	logger.Info("shutting down")
	return g.Wait()
}
