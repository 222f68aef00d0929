package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/repository/posgrest"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service"
)

// InitUser wires the user service. It only publishes, so it keeps serving
// while the broker is away.
func (a *App) InitUser(ctx context.Context) error {
	if err := a.initDatabase(&models.User{}); err != nil {
		return err
	}
	return a.wireUser(ctx, posgrest.NewUserRepository(a.DB), prometheus.DefaultRegisterer, broker.AMQPDialer(a.name))
}

func (a *App) wireUser(ctx context.Context, repo service.UserRepo, reg prometheus.Registerer, dial broker.Dialer) error {
	if err := a.initInfrastructure(ctx, reg, dial); err != nil {
		return err
	}

	events := service.NewUserEventService(a.Publisher, a.Notifier)
	a.notifications = append(a.notifications, events)
	users := service.NewUserService(repo, events)
	a.RegisterUserRoutes(handler.NewUserHandler(users))
	return nil
}
