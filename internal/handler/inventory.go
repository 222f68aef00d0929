package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

type InventoryService interface {
	CreateInventory(ctx context.Context, in *dto.CreateInventory) (*models.InventoryRecord, error)
	GetInventory(ctx context.Context, productID string) (*models.InventoryRecord, error)
	ListInventory(ctx context.Context) ([]models.InventoryRecord, error)
	LowStock(ctx context.Context) ([]models.InventoryRecord, error)
	Reserve(ctx context.Context, productID string, in *dto.Reserve) (*models.InventoryRecord, error)
	Release(ctx context.Context, productID string, in *dto.Release) (*models.InventoryRecord, error)
	AdjustStock(ctx context.Context, in *dto.AdjustStock) (*models.InventoryRecord, error)
	GetMovements(ctx context.Context, productID string, limit int) ([]models.Movement, error)
	Deactivate(ctx context.Context, productID string) error
}

type InventoryHandler struct {
	Service InventoryService
}

func NewInventoryHandler(s InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: s}
}

// POST /inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventory
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	record, err := h.Service.CreateInventory(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GET /inventory
func (h *InventoryHandler) List(c *gin.Context) {
	records, err := h.Service.ListInventory(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": nonNil(records), "count": len(records)})
}

// GET /inventory/low-stock
func (h *InventoryHandler) LowStock(c *gin.Context) {
	records, err := h.Service.LowStock(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": nonNil(records), "count": len(records)})
}

// GET /inventory/:productId
func (h *InventoryHandler) Get(c *gin.Context) {
	record, err := h.Service.GetInventory(c.Request.Context(), c.Param("productId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DELETE /inventory/:productId
func (h *InventoryHandler) Deactivate(c *gin.Context) {
	if err := h.Service.Deactivate(c.Request.Context(), c.Param("productId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /inventory/:productId/reserve
func (h *InventoryHandler) Reserve(c *gin.Context) {
	var req dto.Reserve
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	record, err := h.Service.Reserve(c.Request.Context(), c.Param("productId"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// POST /inventory/:productId/release
func (h *InventoryHandler) Release(c *gin.Context) {
	var req dto.Release
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	record, err := h.Service.Release(c.Request.Context(), c.Param("productId"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// POST /inventory/:productId/adjust
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req dto.AdjustStock
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}
	req.ProductID = c.Param("productId")
	record, err := h.Service.AdjustStock(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// GET /inventory/:productId/movements?limit=N
func (h *InventoryHandler) Movements(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer", "code": "INVALID_REQUEST"})
			return
		}
		limit = n
	}
	movements, err := h.Service.GetMovements(c.Request.Context(), c.Param("productId"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": nonNil(movements), "count": len(movements)})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
