package main

import (
	"context"

	"github.com/printflow/printflow/internal/client/cli"
	"github.com/printflow/printflow/internal/client/config"
)

func main() {
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(context.Background())
}
