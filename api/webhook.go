package api

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/kod2ulz/fintava-go/client"
)

var (
	webhookCreate     = client.Endpoint{Method: http.MethodPost, Uri: "webhooks"}
	webhookGet        = client.Endpoint{Method: http.MethodGet, Uri: "webhooks/%s"}
	webhookList       = client.Endpoint{Method: http.MethodGet, Uri: "webhooks"}
	webhookUpdate     = client.Endpoint{Method: http.MethodPut, Uri: "webhooks/%s"}
	webhookDelete     = client.Endpoint{Method: http.MethodDelete, Uri: "webhooks/%s"}
	webhookSecret     = client.Endpoint{Method: http.MethodPost, Uri: "webhooks/%s/regenerate-secret"}
	webhookTest       = client.Endpoint{Method: http.MethodPost, Uri: "webhooks/%s/test"}
	webhookDeliveries = client.Endpoint{Method: http.MethodGet, Uri: "webhooks/%s/deliveries"}
	webhookDelivery   = client.Endpoint{Method: http.MethodGet, Uri: "webhooks/deliveries/%s"}
	webhookRetry      = client.Endpoint{Method: http.MethodPost, Uri: "webhooks/deliveries/%s/retry"}
	webhookCancel     = client.Endpoint{Method: http.MethodPost, Uri: "webhooks/deliveries/%s/cancel"}
	webhookEvents     = client.Endpoint{Method: http.MethodGet, Uri: "webhooks/events"}
	webhookStatistics = client.Endpoint{Method: http.MethodGet, Uri: "webhooks/%s/statistics"}
	webhookBulkRetry  = client.Endpoint{Method: http.MethodPost, Uri: "webhooks/%s/deliveries/retry-failed"}
)

const signaturePrefix = "sha256="

// Event names delivered by the platform.
const (
	EventCustomerCreated      = "customer.created"
	EventCustomerUpdated      = "customer.updated"
	EventWalletCredited       = "wallet.credited"
	EventWalletDebited        = "wallet.debited"
	EventTransferSuccessful   = "transfer.successful"
	EventTransferFailed       = "transfer.failed"
	EventTransferReversed     = "transfer.reversed"
	EventCardCreated          = "card.created"
	EventCardTransaction      = "card.transaction"
	EventVirtualAccountCredit = "virtual_account.credit"
	EventBillPaymentComplete  = "bill_payment.complete"
	EventBillPaymentFailed    = "bill_payment.failed"
)

type WebhookEndpoint struct {
	ID          string   `json:"id"`
	Url         string   `json:"url"`
	Events      []string `json:"events"`
	Description string   `json:"description,omitempty"`
	IsActive    bool     `json:"isActive"`
	Secret      string   `json:"secret,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type WebhookDelivery struct {
	ID           string `json:"id"`
	EndpointID   string `json:"endpointId"`
	Event        string `json:"event"`
	Status       string `json:"status"`
	Attempts     int    `json:"attempts"`
	ResponseCode int    `json:"responseCode,omitempty"`
	ResponseBody string `json:"responseBody,omitempty"`
	NextRetryAt  string `json:"nextRetryAt,omitempty"`
	DeliveredAt  string `json:"deliveredAt,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

type WebhookStatistics struct {
	TotalDeliveries      int     `json:"totalDeliveries"`
	SuccessfulDeliveries int     `json:"successfulDeliveries"`
	FailedDeliveries     int     `json:"failedDeliveries"`
	PendingDeliveries    int     `json:"pendingDeliveries"`
	SuccessRate          float64 `json:"successRate"`
}

type WebhookTestResult struct {
	Delivered    bool   `json:"delivered"`
	ResponseCode int    `json:"responseCode,omitempty"`
	Error        string `json:"error,omitempty"`
}

type BulkRetryResult struct {
	Retried int `json:"retried"`
	Skipped int `json:"skipped"`
}

// WebhookEvent is the envelope delivered to endpoint urls.
type WebhookEvent struct {
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
	Signature string          `json:"signature,omitempty"`
}

type CreateWebhookParams struct {
	Url         string   `json:"url" validate:"required,url"`
	Events      []string `json:"events" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
}

type UpdateWebhookParams struct {
	Url         string   `json:"url,omitempty" validate:"omitempty,url"`
	Events      []string `json:"events,omitempty" validate:"omitempty,min=1"`
	Description string   `json:"description,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

type DeliveryListOptions struct {
	ListOptions
	DateRange
	Event  string `json:"event,omitempty"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending successful failed cancelled"`
}

func (o DeliveryListOptions) query() url.Values {
	q := o.ListOptions.query(defaultLimit)
	o.DateRange.apply(q)
	setIf(q, "event", o.Event)
	setIf(q, "status", o.Status)
	return q
}

type WebhookService struct {
	client *client.Fintava
}

func (s *WebhookService) CreateEndpoint(ctx context.Context, params CreateWebhookParams) (out client.ApiResponse[WebhookEndpoint], err error) {
	if err = check(params); err != nil {
		return
	}
	return client.Request[client.ApiResponse[WebhookEndpoint]](s.client, ctx, webhookCreate, params, nil)
}

func (s *WebhookService) GetEndpoint(ctx context.Context, endpointId string) (client.ApiResponse[WebhookEndpoint], error) {
	return client.Request[client.ApiResponse[WebhookEndpoint]](s.client, ctx, webhookGet.Format(endpointId), nil, nil)
}

func (s *WebhookService) ListEndpoints(ctx context.Context, options ListOptions) (out client.PaginatedResponse[WebhookEndpoint], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[WebhookEndpoint]](s.client, ctx, webhookList, nil, options.query(defaultLimit))
}

func (s *WebhookService) UpdateEndpoint(ctx context.Context, endpointId string, params UpdateWebhookParams) (out client.ApiResponse[WebhookEndpoint], err error) {
	if err = check(params); err != nil {
		return
	}
	return client.Request[client.ApiResponse[WebhookEndpoint]](s.client, ctx, webhookUpdate.Format(endpointId), params, nil)
}

func (s *WebhookService) DeleteEndpoint(ctx context.Context, endpointId string) (client.ApiResponse[Deleted], error) {
	return client.Request[client.ApiResponse[Deleted]](s.client, ctx, webhookDelete.Format(endpointId), nil, nil)
}

// RegenerateSecret rotates the endpoint signing secret. The previous secret
// stops validating immediately.
func (s *WebhookService) RegenerateSecret(ctx context.Context, endpointId string) (client.ApiResponse[WebhookEndpoint], error) {
	return client.Request[client.ApiResponse[WebhookEndpoint]](s.client, ctx, webhookSecret.Format(endpointId), nil, nil)
}

func (s *WebhookService) TestEndpoint(ctx context.Context, endpointId, event string) (client.ApiResponse[WebhookTestResult], error) {
	body := struct {
		Event string `json:"event"`
	}{Event: event}
	return client.Request[client.ApiResponse[WebhookTestResult]](s.client, ctx, webhookTest.Format(endpointId), body, nil)
}

func (s *WebhookService) GetDeliveries(ctx context.Context, endpointId string, options DeliveryListOptions) (out client.PaginatedResponse[WebhookDelivery], err error) {
	if err = check(options); err != nil {
		return
	}
	return client.Request[client.PaginatedResponse[WebhookDelivery]](s.client, ctx, webhookDeliveries.Format(endpointId), nil, options.query())
}

func (s *WebhookService) GetDelivery(ctx context.Context, deliveryId string) (client.ApiResponse[WebhookDelivery], error) {
	return client.Request[client.ApiResponse[WebhookDelivery]](s.client, ctx, webhookDelivery.Format(deliveryId), nil, nil)
}

func (s *WebhookService) RetryDelivery(ctx context.Context, deliveryId string) (client.ApiResponse[WebhookDelivery], error) {
	return client.Request[client.ApiResponse[WebhookDelivery]](s.client, ctx, webhookRetry.Format(deliveryId), nil, nil)
}

func (s *WebhookService) CancelDelivery(ctx context.Context, deliveryId string) (client.ApiResponse[WebhookDelivery], error) {
	return client.Request[client.ApiResponse[WebhookDelivery]](s.client, ctx, webhookCancel.Format(deliveryId), nil, nil)
}

func (s *WebhookService) GetAvailableEvents(ctx context.Context) (client.ApiResponse[[]string], error) {
	return client.Request[client.ApiResponse[[]string]](s.client, ctx, webhookEvents, nil, nil)
}

func (s *WebhookService) GetStatistics(ctx context.Context, endpointId string, dates DateRange) (out client.ApiResponse[WebhookStatistics], err error) {
	if err = check(dates); err != nil {
		return
	}
	q := url.Values{}
	dates.apply(q)
	return client.Request[client.ApiResponse[WebhookStatistics]](s.client, ctx, webhookStatistics.Format(endpointId), nil, q)
}

func (s *WebhookService) BulkRetryFailed(ctx context.Context, endpointId string) (client.ApiResponse[BulkRetryResult], error) {
	return client.Request[client.ApiResponse[BulkRetryResult]](s.client, ctx, webhookBulkRetry.Format(endpointId), nil, nil)
}

// VerifySignature reports whether signature matches the HMAC-SHA256 of
// payload under secret. An optional "sha256=" prefix on the signature is
// accepted; comparison is constant-time.
func VerifySignature(payload []byte, signature, secret string) bool {
	signature = strings.TrimPrefix(signature, signaturePrefix)
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hmac.Equal(mac.Sum(nil), expected)
}

// ParseEvent verifies signature over payload and decodes the event envelope.
// It returns nil when the signature does not match, the payload is not valid
// JSON, or any of event, data, or timestamp is missing.
func ParseEvent(payload []byte, signature, secret string) *WebhookEvent {
	if !VerifySignature(payload, signature, secret) {
		return nil
	}
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil
	}
	if event.Event == "" || event.Timestamp == "" {
		return nil
	}
	if len(event.Data) == 0 || bytes.Equal(event.Data, []byte("null")) {
		return nil
	}
	return &event
}

// Sign computes the hex HMAC-SHA256 signature a delivery of payload would
// carry under secret, without the "sha256=" prefix.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *WebhookService) VerifySignature(payload []byte, signature, secret string) bool {
	return VerifySignature(payload, signature, secret)
}

func (s *WebhookService) ParseEvent(payload []byte, signature, secret string) *WebhookEvent {
	return ParseEvent(payload, signature, secret)
}
