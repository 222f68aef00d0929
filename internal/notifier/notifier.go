package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	TypeWelcome       = "welcome"
	TypeFarewell      = "farewell"
	TypeOrderCreated  = "order_created"
	TypeOrderStatus   = "order_status"
	TypeOrderCanceled = "order_cancelled"
)

type Notification struct {
	Type      string         `json:"type"`
	UserID    string         `json:"userId"`
	Recipient string         `json:"recipient,omitempty"`
	Subject   string         `json:"subject"`
	Data      map[string]any `json:"data,omitempty"`
}

type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// New returns an HTTP notifier for baseURL, or a log-only notifier when
// no notification service is configured.
func New(baseURL string, timeout time.Duration, logger logrus.FieldLogger) Notifier {
	if strings.TrimSpace(baseURL) == "" {
		return NewLogNotifier(logger)
	}
	return NewHTTPNotifier(baseURL, &http.Client{Timeout: timeout})
}

type HTTPNotifier struct {
	endpoint string
	client   *http.Client
}

func NewHTTPNotifier(baseURL string, client *http.Client) *HTTPNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPNotifier{
		endpoint: strings.TrimRight(baseURL, "/") + "/notifications",
		client:   client,
	}
}

func (n *HTTPNotifier) Send(ctx context.Context, note Notification) error {
	body, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("error marshaling notification: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification service responded %d", resp.StatusCode)
	}
	return nil
}

type LogNotifier struct {
	logger logrus.FieldLogger
}

func NewLogNotifier(logger logrus.FieldLogger) *LogNotifier {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogNotifier{logger: logger.WithField("component", "notifier")}
}

func (n *LogNotifier) Send(_ context.Context, note Notification) error {
	n.logger.WithFields(logrus.Fields{
		"type":    note.Type,
		"user_id": note.UserID,
		"subject": note.Subject,
	}).Info("notification recorded without delivery endpoint")
	return nil
}
