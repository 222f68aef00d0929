package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in *dto.CreateOrder) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, in *dto.UpdateOrderStatus) (*models.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, in *dto.UpdatePaymentStatus) (*models.Order, error)
	CancelOrder(ctx context.Context, id string, in *dto.CancelOrder) (*models.Order, error)
}

type OrderHandler struct {
	Service OrderService
}

func NewOrderHandler(s OrderService) *OrderHandler {
	return &OrderHandler{Service: s}
}

// POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrder
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	order, err := h.Service.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.Service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	order, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// PATCH /orders/:id/payment
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	var req dto.UpdatePaymentStatus
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	order, err := h.Service.UpdatePaymentStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /orders/:id/cancel. The body is optional.
func (h *OrderHandler) Cancel(c *gin.Context) {
	var req dto.CancelOrder
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badBody(c)
			return
		}
	}
	order, err := h.Service.CancelOrder(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
