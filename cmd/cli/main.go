package main

import (
	"context"
	"log"

	"github.com/levietphu/campuspark/internal/cli"
	"github.com/levietphu/campuspark/internal/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
