package main

import (
	"context"
	"eikaiwa/config"
	"eikaiwa/di"
	"eikaiwa/shared/logger"
	"os/signal"
	"syscall"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	notifier := di.InitializeNotifier()
	notifier.Run(ctx)
}
