package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/fleamarket/internal/app"
	"github.com/dmitrijs2005/fleamarket/internal/config"
	"github.com/dmitrijs2005/fleamarket/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(cfg.LogLevel)

	a, err := app.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := a.Run(ctx); err != nil {
		logger.Error(ctx, "application error", "error", err.Error())
	}
}
