package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/VivekGupta011/Distributed-Marketplace/internal/models"
)

// InventoryClient calls the inventory service ledger API.
type InventoryClient struct {
	baseURL string
	http    *http.Client
}

func NewInventoryClient(baseURL string, httpClient *http.Client) *InventoryClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &InventoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type reserveRequest struct {
	Quantity int    `json:"quantity"`
	OrderID  string `json:"orderId"`
}

type releaseRequest struct {
	Quantity int    `json:"quantity"`
	OrderID  string `json:"orderId"`
	Fulfill  bool   `json:"fulfill"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (c *InventoryClient) Reserve(ctx context.Context, productID string, quantity int, orderID string) error {
	return c.post(ctx, productID, "reserve", reserveRequest{Quantity: quantity, OrderID: orderID})
}

func (c *InventoryClient) Release(ctx context.Context, productID string, quantity int, orderID string, fulfill bool) error {
	return c.post(ctx, productID, "release", releaseRequest{Quantity: quantity, OrderID: orderID, Fulfill: fulfill})
}

func (c *InventoryClient) post(ctx context.Context, productID, action string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding %s request: %w", action, err)
	}
	url := fmt.Sprintf("%s/inventory/%s/%s", c.baseURL, productID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("inventory %s %s: %w", action, productID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return responseError(resp)
}

// responseError turns an inventory error response back into the domain
// error it was produced from, so callers can keep using errors.Is.
func responseError(resp *http.Response) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil || body.Error == "" {
		body.Error = strings.TrimSpace(string(raw))
	}

	var target error
	switch {
	case body.Code == "INSUFFICIENT_STOCK":
		target = models.ErrInsufficientStock
	case resp.StatusCode == http.StatusNotFound:
		target = models.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		target = models.ErrInvalidRequest
	case resp.StatusCode == http.StatusConflict:
		target = models.ErrVersionConflict
	default:
		return fmt.Errorf("inventory service returned %d: %s", resp.StatusCode, body.Error)
	}
	if body.Error == "" || body.Error == target.Error() {
		return target
	}
	return fmt.Errorf("%w: %s", target, body.Error)
}
