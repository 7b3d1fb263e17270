package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"skinkit/internal/config"
	"skinkit/internal/router"
	"skinkit/internal/server"
	"skinkit/internal/skinapi"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "skinkit"})

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		api := skinapi.NewHandler(nil, logger.WithPrefix("skinkit/http"))
		go func() {
			if err := skinapi.Serve(ctx, cfg.HTTPAddr, api); err != nil {
				logger.Error("run http api", "err", err)
				stop()
			}
		}()
	}

	chain := router.DefaultChain(cfg.RateLimitPerMinute, cfg.RateBurst, cfg.Variant, logger)
	runtime, err := server.New(cfg, chain, logger)
	if err != nil {
		logger.Fatal("build ssh server", "err", err)
	}

	if err := runtime.Run(ctx); err != nil {
		logger.Fatal("run ssh server", "err", err)
	}
}
