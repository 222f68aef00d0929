package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/handler/mocks"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models/dto"
)

func orderRouter(svc handler.OrderService) *gin.Engine {
	h := handler.NewOrderHandler(svc)
	r := gin.New()
	g := r.Group("/orders")
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PATCH("/:id/status", h.UpdateStatus)
	g.PATCH("/:id/payment", h.UpdatePayment)
	g.POST("/:id/cancel", h.Cancel)
	return r
}

func TestOrderHandler_Create(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(in *dto.CreateOrder) bool {
		return in.UserID == "user-1" && len(in.Items) == 1 && in.Items[0].Quantity == 2
	})).Return(&models.Order{ID: "order-1", Status: models.OrderPending}, nil).Once()

	w := do(orderRouter(svc), http.MethodPost, "/orders", `{"userId":"user-1","items":[{"productId":"sku-1","quantity":2,"price":3}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "order-1", decode(t, w)["id"])
}

func TestOrderHandler_CreateOutOfStock(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, models.ErrInsufficientStock).Once()

	w := do(orderRouter(svc), http.MethodPost, "/orders", `{"userId":"user-1","items":[{"productId":"sku-1","quantity":99}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode(t, w)["code"])
}

func TestOrderHandler_InvalidTransition(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().UpdateStatus(mock.Anything, "order-1", &dto.UpdateOrderStatus{Status: models.OrderPending}).
		Return(nil, models.ErrInvalidTransition).Once()

	w := do(orderRouter(svc), http.MethodPatch, "/orders/order-1/status", `{"status":"PENDING"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestOrderHandler_UpdatePayment(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().UpdatePaymentStatus(mock.Anything, "order-1", &dto.UpdatePaymentStatus{PaymentStatus: models.PaymentPaid}).
		Return(&models.Order{ID: "order-1", PaymentStatus: models.PaymentPaid}, nil).Once()

	w := do(orderRouter(svc), http.MethodPatch, "/orders/order-1/payment", `{"paymentStatus":"PAID"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PAID", decode(t, w)["paymentStatus"])
}

func TestOrderHandler_CancelWithoutBody(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().CancelOrder(mock.Anything, "order-1", &dto.CancelOrder{}).
		Return(&models.Order{ID: "order-1", Status: models.OrderCancelled}, nil).Once()

	w := do(orderRouter(svc), http.MethodPost, "/orders/order-1/cancel", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "CANCELLED", decode(t, w)["status"])
}

func TestOrderHandler_GetNotFound(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().GetOrder(mock.Anything, "nope").Return(nil, models.ErrNotFound).Once()

	w := do(orderRouter(svc), http.MethodGet, "/orders/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
