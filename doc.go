// Package medicamenta provides a native Go client for the Medicamenta.me
// medication-adherence REST API.
//
// # Features
//
//   - Typed resource services (Patients, Medications, Adherence, Reports, Webhooks)
//   - Modern Go 1.25+ iterators for pagination
//   - Typed errors for precise error handling
//   - Functional options for flexible configuration
//   - Webhook signature verification
//
// # Quick Start
//
//	client, err := medicamenta.NewClient(
//	    medicamenta.WithAPIKey("YOUR_API_KEY"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List active patients
//	for patient, err := range client.Patients.ListAll(ctx, &medicamenta.ListPatientsOptions{
//	    Status: medicamenta.PatientStatusActive,
//	}) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(patient.Name)
//	}
//
// Authentication uses either an API key (X-API-Key header) or an OAuth
// access token (Authorization: Bearer); exactly one must be configured.
//
// # Error Handling
//
// The package uses typed errors that can be inspected with errors.As:
//
//	patient, err := client.Patients.Get(ctx, "invalid-id")
//	if err != nil {
//	    var notFound *medicamenta.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // Handle not found
//	    }
//	}
//
// Transport-level failures (DNS, timeout, connection reset) surface as
// *NetworkError; the SDK never retries.
//
// # Webhooks
//
// Incoming webhook deliveries carry an X-Webhook-Signature header.
// Verify it against the subscription secret before trusting the payload:
//
//	if !medicamenta.VerifyWebhookSignature(body, r.Header.Get("X-Webhook-Signature"), secret) {
//	    http.Error(w, "invalid signature", http.StatusUnauthorized)
//	    return
//	}
package medicamenta
