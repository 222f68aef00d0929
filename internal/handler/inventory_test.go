package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler/mocks"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func inventoryRouter(svc handler.InventoryService) *gin.Engine {
	h := handler.NewInventoryHandler(svc)
	r := gin.New()
	g := r.Group("/inventory")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/low-stock", h.LowStock)
	g.GET("/:productId", h.Get)
	g.DELETE("/:productId", h.Deactivate)
	g.POST("/:productId/reserve", h.Reserve)
	g.POST("/:productId/release", h.Release)
	g.POST("/:productId/adjust", h.Adjust)
	g.GET("/:productId/movements", h.Movements)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestInventoryHandler_Create(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().CreateInventory(mock.Anything, &dto.CreateInventory{ProductID: "sku-1", InitialStock: 50, ReorderLevel: 5}).
		Return(&models.InventoryRecord{ProductID: "sku-1", CurrentStock: 50, AvailableStock: 50, IsActive: true}, nil).Once()

	w := do(inventoryRouter(svc), http.MethodPost, "/inventory", `{"productId":"sku-1","initialStock":50,"reorderLevel":5}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(50), decode(t, w)["availableStock"])
}

func TestInventoryHandler_CreateDuplicate(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().CreateInventory(mock.Anything, mock.Anything).Return(nil, models.ErrDuplicateProduct).Once()

	w := do(inventoryRouter(svc), http.MethodPost, "/inventory", `{"productId":"sku-1"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_PRODUCT", decode(t, w)["code"])
}

func TestInventoryHandler_ReserveInsufficientStock(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().Reserve(mock.Anything, "sku-1", mock.MatchedBy(func(in *dto.Reserve) bool {
		return in.Quantity != nil && *in.Quantity == 45 && in.OrderID == "order-B"
	})).Return(nil, models.ErrInsufficientStock).Once()

	w := do(inventoryRouter(svc), http.MethodPost, "/inventory/sku-1/reserve", `{"quantity":45,"orderId":"order-B"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Equal(t, models.ErrInsufficientStock.Error(), body["error"])
}

func TestInventoryHandler_ReleaseFulfill(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().Release(mock.Anything, "sku-1", mock.MatchedBy(func(in *dto.Release) bool {
		return in.Fulfill && *in.Quantity == 10
	})).Return(&models.InventoryRecord{ProductID: "sku-1", CurrentStock: 40}, nil).Once()

	w := do(inventoryRouter(svc), http.MethodPost, "/inventory/sku-1/release", `{"quantity":10,"orderId":"order-A","fulfill":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(40), decode(t, w)["currentStock"])
}

func TestInventoryHandler_MalformedBody(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)

	w := do(inventoryRouter(svc), http.MethodPost, "/inventory/sku-1/reserve", `{"quantity":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryHandler_AdjustUsesPathProduct(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().AdjustStock(mock.Anything, mock.MatchedBy(func(in *dto.AdjustStock) bool {
		return in.ProductID == "sku-9" && in.Type == models.MovementIn && in.Reason == "restock"
	})).Return(&models.InventoryRecord{ProductID: "sku-9"}, nil).Once()

	w := do(inventoryRouter(svc), http.MethodPost, "/inventory/sku-9/adjust", `{"productId":"other","quantity":5,"type":"in","reason":"restock"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInventoryHandler_GetNotFound(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().GetInventory(mock.Anything, "ghost").Return(nil, models.ErrNotFound).Once()

	w := do(inventoryRouter(svc), http.MethodGet, "/inventory/ghost", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, w)["code"])
}

func TestInventoryHandler_ListEmpty(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().ListInventory(mock.Anything).Return(nil, nil).Once()

	w := do(inventoryRouter(svc), http.MethodGet, "/inventory", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, w.Body.String())
}

func TestInventoryHandler_LowStockRouteIsNotAProduct(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().LowStock(mock.Anything).Return([]models.InventoryRecord{{ProductID: "sku-1"}}, nil).Once()

	w := do(inventoryRouter(svc), http.MethodGet, "/inventory/low-stock", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])
	svc.AssertNotCalled(t, "GetInventory", mock.Anything, mock.Anything)
}

func TestInventoryHandler_Movements(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().GetMovements(mock.Anything, "sku-1", 2).
		Return([]models.Movement{{Type: models.MovementOut}, {Type: models.MovementReserved}}, nil).Once()

	w := do(inventoryRouter(svc), http.MethodGet, "/inventory/sku-1/movements?limit=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decode(t, w)["count"])

	w = do(inventoryRouter(svc), http.MethodGet, "/inventory/sku-1/movements?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryHandler_DeactivateAndInternalError(t *testing.T) {
	svc := mocks.NewMockInventoryService(t)
	svc.EXPECT().Deactivate(mock.Anything, "sku-1").Return(nil).Once()
	svc.EXPECT().Deactivate(mock.Anything, "sku-2").Return(errors.New("pq: connection refused")).Once()

	w := do(inventoryRouter(svc), http.MethodDelete, "/inventory/sku-1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(inventoryRouter(svc), http.MethodDelete, "/inventory/sku-2", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "INTERNAL_ERROR", body["code"])
	assert.NotContains(t, body["error"], "pq")
}
