package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler"
)

func newRouter(service string, cm *broker.ConnectionManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": service,
			"status":  "ok",
			"broker":  string(cm.State()),
		})
	})
	return r
}

func (a *App) RegisterInventoryRoutes(h *handler.InventoryHandler) {
	g := a.Router.Group("/inventory")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/low-stock", h.LowStock)
	g.GET("/:productId", h.Get)
	g.DELETE("/:productId", h.Deactivate)
	g.POST("/:productId/reserve", h.Reserve)
	g.POST("/:productId/release", h.Release)
	g.POST("/:productId/adjust", h.Adjust)
	g.GET("/:productId/movements", h.Movements)
}

func (a *App) RegisterOrderRoutes(h *handler.OrderHandler) {
	g := a.Router.Group("/orders")
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.PATCH("/:id/payment", h.UpdatePayment)
	g.POST("/:id/cancel", h.Cancel)
}

func (a *App) RegisterUserRoutes(h *handler.UserHandler) {
	g := a.Router.Group("/users")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.PUT("/:id", h.UpdateProfile)
	g.DELETE("/:id", h.Deactivate)
}
