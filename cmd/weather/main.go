package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"weathercli.app/internal/app"
	"weathercli.app/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load environment variables from .env file if present
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return 1
	}

	application, err := app.NewApplication(cfg, app.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := application.Run(ctx, args)

	if err := application.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	return code
}
