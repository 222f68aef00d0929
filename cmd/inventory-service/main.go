package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/VivekGupta011/Distributed-Marketplace/config"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Println("Error reading config file", err)
		os.Exit(1)
	}

	myApp := app.New(cfg, "inventory-service")
	if err := myApp.InitInventory(ctx); err != nil {
		logrus.WithError(err).Error("inventory service failed to start")
		_ = myApp.Shutdown(context.Background())
		os.Exit(1)
	}
	if err := myApp.Run(ctx); err != nil {
		logrus.WithError(err).Error("inventory service stopped with errors")
		os.Exit(1)
	}
}
