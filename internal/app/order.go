package app

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/client"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/repository/posgrest"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service"
)

func (a *App) InitOrder(ctx context.Context) error {
	if err := a.initDatabase(&models.Order{}); err != nil {
		return err
	}
	return a.wireOrder(ctx, posgrest.New[models.Order](a.DB), prometheus.DefaultRegisterer, broker.AMQPDialer(a.name))
}

func (a *App) wireOrder(ctx context.Context, repo service.OrderRepo, reg prometheus.Registerer, dial broker.Dialer) error {
	if err := a.initInfrastructure(ctx, reg, dial); err != nil {
		return err
	}

	inventory := client.NewInventoryClient(a.config.Services.InventoryURL, &http.Client{Timeout: a.config.Services.HTTPTimeout})
	events := service.NewOrderEventService(a.Publisher, a.Notifier, a.name)
	a.notifications = append(a.notifications, events)
	orders := service.NewOrderService(repo, inventory, events)
	a.RegisterOrderRoutes(handler.NewOrderHandler(orders))

	return events.RegisterSubscriptions(ctx, a.Subscriber)
}
