package medicamenta

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medicamenta/go-medicamenta/internal/api"
)

// WebhookService provides operations on webhook subscriptions.
type WebhookService interface {
	// Create creates a webhook subscription.
	Create(ctx context.Context, req *CreateWebhookRequest, opts ...RequestOption) (*Webhook, error)

	// List returns all webhook subscriptions.
	List(ctx context.Context, opts ...RequestOption) ([]*Webhook, error)

	// Get retrieves a single webhook by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Webhook, error)

	// Delete removes a webhook subscription.
	Delete(ctx context.Context, id string, opts ...RequestOption) error

	// Test triggers a test delivery to the webhook endpoint.
	Test(ctx context.Context, id string, opts ...RequestOption) (*WebhookTestResult, error)
}

type webhookService struct {
	transport *api.Transport
}

func newWebhookService(transport *api.Transport) *webhookService {
	return &webhookService{transport: transport}
}

// Create creates a webhook subscription.
func (s *webhookService) Create(ctx context.Context, req *CreateWebhookRequest, opts ...RequestOption) (*Webhook, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Webhook
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPost,
		Path:    "/v1/webhooks",
		Body:    req,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// List returns all webhook subscriptions.
func (s *webhookService) List(ctx context.Context, opts ...RequestOption) ([]*Webhook, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result struct {
		Data []*Webhook `json:"data"`
	}
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/webhooks",
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// Get retrieves a single webhook by ID.
func (s *webhookService) Get(ctx context.Context, id string, opts ...RequestOption) (*Webhook, error) {
	if err := validateID("webhook", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Webhook
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/webhooks/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "webhook", id)
	}

	return &result, nil
}

// Delete removes a webhook subscription.
func (s *webhookService) Delete(ctx context.Context, id string, opts ...RequestOption) error {
	if err := validateID("webhook", id); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodDelete,
		Path:    "/v1/webhooks/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, nil)
	if err != nil {
		return decorateNotFound(err, "webhook", id)
	}

	return nil
}

// Test triggers a test delivery to the webhook endpoint.
func (s *webhookService) Test(ctx context.Context, id string, opts ...RequestOption) (*WebhookTestResult, error) {
	if err := validateID("webhook", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result WebhookTestResult
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPost,
		Path:    "/v1/webhooks/" + url.PathEscape(id) + "/test",
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "webhook", id)
	}

	return &result, nil
}
