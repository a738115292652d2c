package main

import (
	"context"
	"log"
	"os"

	"tastebook/internal/buildinfo"
	"tastebook/internal/client/cli"
	"tastebook/internal/client/config"
	"tastebook/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
