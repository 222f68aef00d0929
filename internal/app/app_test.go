package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VivekGupta011/Distributed-Marketplace/config"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/broker/brokertest"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
	"github.com/VivekGupta011/Distributed-Marketplace/internal/service/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(name string) *config.Config {
	return &config.Config{
		APP: config.APP{NAME: name, PORT: "0", LogLevel: "error", ShutdownTimeout: time.Second},
		Broker: config.Broker{
			URL:                  "amqp://test",
			ReconnectDelay:       10 * time.Millisecond,
			ReconnectMaxAttempts: 3,
			PublishTimeout:       time.Second,
		},
	}
}

func shutdown(t *testing.T, a *App) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, a.Shutdown(ctx))
}

func TestInventoryApp_ReleasesStockOnOrderCancelled(t *testing.T) {
	fake := brokertest.New()
	repo := mocks.NewMockInventoryRepo(t)
	a := New(testConfig(""), "inventory-service")

	require.NoError(t, a.wireInventory(context.Background(), repo, prometheus.NewRegistry(), fake.Dial))
	defer shutdown(t, a)

	for _, ex := range models.Exchanges {
		assert.True(t, fake.ExchangeDeclared(ex), ex)
	}
	queue := "inventory-service-order-cancelled"
	require.True(t, fake.QueueExists(queue))
	assert.Equal(t, 1, fake.Consumers(queue))

	event, err := models.NewEvent(models.EventOrderCancelled, models.OrderCancelledData{
		OrderID: "order-1",
		Items:   []models.OrderItemData{{ProductID: "sku-1", Quantity: 2}},
	}, time.Now())
	require.NoError(t, err)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	saved := make(chan *models.InventoryRecord, 1)
	repo.EXPECT().EventProcessed(mock.Anything, event.ID, "sku-1").Return(false, nil).Once()
	repo.EXPECT().GetByProductID(mock.Anything, "sku-1").
		Return(&models.InventoryRecord{ProductID: "sku-1", CurrentStock: 10, ReservedStock: 2, AvailableStock: 8, IsActive: true, Version: 4}, nil).Once()
	repo.EXPECT().SaveMutation(mock.Anything, mock.Anything, int64(4), mock.MatchedBy(func(m *models.Movement) bool {
		return m.Type == models.MovementReleased && m.Quantity == 2 && m.Reference == "order-1"
	}), event.ID).
		Run(func(_ context.Context, record *models.InventoryRecord, _ int64, _ *models.Movement, _ string) {
			saved <- record
		}).Return(nil).Once()

	require.NoError(t, fake.Inject(models.OrderExchange, models.EventOrderCancelled, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}))

	select {
	case record := <-saved:
		assert.Equal(t, 0, record.ReservedStock)
		assert.Equal(t, 10, record.AvailableStock)
	case <-time.After(2 * time.Second):
		t.Fatal("order.cancelled was not applied")
	}
	assert.Eventually(t, func() bool { return fake.Depth(queue) == 0 }, 2*time.Second, 5*time.Millisecond)
}

func TestUserApp_ServesWhileBrokerIsDown(t *testing.T) {
	fake := brokertest.New()
	fake.FailNextDials(-1)
	repo := mocks.NewMockUserRepo(t)
	a := New(testConfig("user-service"), "user-service")

	require.NoError(t, a.wireUser(context.Background(), repo, prometheus.NewRegistry(), fake.Dial))
	defer shutdown(t, a)

	register := func(email string) int {
		repo.EXPECT().GetByEmail(mock.Anything, email).Return(nil, models.ErrNotFound).Once()
		repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/users/register",
			strings.NewReader(`{"email":"`+email+`","name":"Jane","password":"s3cret-pass"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, register("jane@example.com"))
	assert.Empty(t, fake.Published())
	assert.Equal(t, broker.StateDisconnected, a.Broker.State())

	fake.FailNextDials(0)

	assert.Equal(t, http.StatusCreated, register("john@example.com"))
	published := fake.Published()
	require.Len(t, published, 1)
	assert.Equal(t, models.UserExchange, published[0].Exchange)
	assert.Equal(t, models.EventUserRegistered, published[0].RoutingKey)
	assert.True(t, fake.ExchangeDeclared(models.OrderExchange))
	assert.Equal(t, broker.StateConnected, a.Broker.State())
}

func TestOrderApp_RequiresBrokerForSubscriptions(t *testing.T) {
	fake := brokertest.New()
	fake.FailNextDials(-1)
	a := New(testConfig("order-service"), "order-service")

	err := a.wireOrder(context.Background(), mocks.NewMockOrderRepo(t), prometheus.NewRegistry(), fake.Dial)
	defer shutdown(t, a)

	assert.ErrorIs(t, err, broker.ErrBrokerUnavailable)
}

func TestOrderApp_SubscribesToUpstreamEvents(t *testing.T) {
	fake := brokertest.New()
	a := New(testConfig("order-service"), "order-service")

	require.NoError(t, a.wireOrder(context.Background(), mocks.NewMockOrderRepo(t), prometheus.NewRegistry(), fake.Dial))
	defer shutdown(t, a)

	for _, q := range []string{"order-service-user-deactivated", "order-service-payment-confirmed", "order-service-payment-failed"} {
		assert.True(t, fake.QueueExists(q), q)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	fake := brokertest.New()
	cm := broker.NewConnectionManager("amqp://test", fake.Dial, broker.ReconnectPolicy{Delay: time.Millisecond, MaxAttempts: 1})
	defer cm.Close(context.Background())
	r := newRouter("inventory-service", cm)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"service":"inventory-service","status":"ok","broker":"disconnected"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
