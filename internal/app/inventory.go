package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/repository/posgrest"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/subscriber"
)

// InitInventory wires the inventory ledger service: HTTP API plus the
// order.cancelled consumer that returns reserved stock.
func (a *App) InitInventory(ctx context.Context) error {
	if err := a.initDatabase(&models.InventoryRecord{}, &models.Movement{}, &models.ProcessedEvent{}); err != nil {
		return err
	}
	return a.wireInventory(ctx, posgrest.NewInventoryRepository(a.DB), prometheus.DefaultRegisterer, broker.AMQPDialer(a.name))
}

func (a *App) wireInventory(ctx context.Context, repo service.InventoryRepo, reg prometheus.Registerer, dial broker.Dialer) error {
	if err := a.initInfrastructure(ctx, reg, dial); err != nil {
		return err
	}

	inventory := service.NewInventoryService(repo, a.Metrics)
	a.RegisterInventoryRoutes(handler.NewInventoryHandler(inventory))

	events := handler.NewInventoryEventHandler(inventory)
	queue := subscriber.QueueName(a.name, models.EventOrderCancelled)
	return a.Subscriber.Subscribe(ctx, models.OrderExchange, models.EventOrderCancelled, queue, events.OrderCancelled)
}
