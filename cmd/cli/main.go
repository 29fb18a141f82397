package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gamestack/internal/buildinfo"
	"github.com/dmitrijs2005/gamestack/internal/client/cli"
	"github.com/dmitrijs2005/gamestack/internal/client/config"
	"github.com/dmitrijs2005/gamestack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(logging.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "gamestack-cli",
		Version: buildinfo.Version,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
