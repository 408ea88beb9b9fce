// Package medicamenta provides a Go client for the Medicamenta.me
// medication-adherence REST API.
//
// Basic usage:
//
//	client, err := medicamenta.NewClient(
//	    medicamenta.WithAPIKey("YOUR_API_KEY"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	patient, err := client.Patients.Create(ctx, &medicamenta.CreatePatientRequest{
//	    Name:        "João Silva",
//	    DateOfBirth: "1980-05-15",
//	})
package medicamenta

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/medicamenta/go-medicamenta/internal/api"
	"github.com/medicamenta/go-medicamenta/internal/auth"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://us-central1-medicamenta-app.cloudfunctions.net/api"

	defaultTimeout = 30 * time.Second
)

// Client is the Medicamenta API client. It is stateless across calls and
// safe for concurrent use.
type Client struct {
	// Patients provides access to patient operations.
	Patients PatientService

	// Medications provides access to medication operations.
	Medications MedicationService

	// Adherence provides access to adherence tracking operations.
	Adherence AdherenceService

	// Reports provides access to reporting operations.
	Reports ReportService

	// Webhooks provides access to webhook subscription operations.
	Webhooks WebhookService

	transport *api.Transport
}

// NewClient creates a new Medicamenta client with the given options.
// Exactly one of WithAPIKey or WithAccessToken must be provided.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		return nil, ErrNoBaseURL
	}

	if cfg.apiKey == "" && cfg.accessToken == "" {
		return nil, ErrNoCredentials
	}
	if cfg.apiKey != "" && cfg.accessToken != "" {
		return nil, ErrAmbiguousCredentials
	}

	creds := &auth.Credentials{
		APIKey:      cfg.apiKey,
		AccessToken: cfg.accessToken,
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
	}

	transport, err := api.NewTransport(cfg.baseURL, creds, httpClient)
	if err != nil {
		return nil, err
	}

	if cfg.userAgent != "" {
		transport.UserAgent = cfg.userAgent
	}
	transport.Logger = cfg.logger

	client := &Client{
		transport: transport,
	}

	// Initialize services
	client.Patients = newPatientService(transport)
	client.Medications = newMedicationService(transport)
	client.Adherence = newAdherenceService(transport)
	client.Reports = newReportService(transport)
	client.Webhooks = newWebhookService(transport)

	return client, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.transport.BaseURL.String()
}
