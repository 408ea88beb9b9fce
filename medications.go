package medicamenta

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/medicamenta/go-medicamenta/internal/api"
)

const defaultMedicationPageSize = 20

// MedicationService provides operations on medications.
type MedicationService interface {
	// Create creates a new medication for a patient.
	Create(ctx context.Context, req *CreateMedicationRequest, opts ...RequestOption) (*Medication, error)

	// List returns a single page of medications.
	List(ctx context.Context, options *ListMedicationsOptions, opts ...RequestOption) (*MedicationPage, error)

	// ListAll returns an iterator over all medications matching the
	// options. Pages are fetched lazily as you iterate.
	ListAll(ctx context.Context, options *ListMedicationsOptions, opts ...RequestOption) iter.Seq2[*Medication, error]

	// Get retrieves a single medication by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Medication, error)

	// Update applies a partial update to an existing medication.
	Update(ctx context.Context, id string, req *UpdateMedicationRequest, opts ...RequestOption) (*Medication, error)

	// Delete soft-deletes a medication.
	Delete(ctx context.Context, id string, opts ...RequestOption) error
}

type medicationService struct {
	transport *api.Transport
}

func newMedicationService(transport *api.Transport) *medicationService {
	return &medicationService{transport: transport}
}

// Create creates a new medication for a patient.
func (s *medicationService) Create(ctx context.Context, req *CreateMedicationRequest, opts ...RequestOption) (*Medication, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Medication
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPost,
		Path:    "/v1/medications",
		Body:    req,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// List returns a single page of medications.
func (s *medicationService) List(ctx context.Context, options *ListMedicationsOptions, opts ...RequestOption) (*MedicationPage, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	query := url.Values{}
	if options != nil {
		if options.PatientID != "" {
			query.Set("patientId", options.PatientID)
		}
		if options.Status != "" {
			query.Set("status", options.Status)
		}
		if options.Limit > 0 {
			query.Set("limit", strconv.Itoa(options.Limit))
		}
		if options.Offset > 0 {
			query.Set("offset", strconv.Itoa(options.Offset))
		}
	}

	var result MedicationPage
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/medications",
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListAll returns an iterator over all medications matching the options.
func (s *medicationService) ListAll(ctx context.Context, options *ListMedicationsOptions, opts ...RequestOption) iter.Seq2[*Medication, error] {
	return func(yield func(*Medication, error) bool) {
		page := ListMedicationsOptions{Limit: defaultMedicationPageSize}
		if options != nil {
			page = *options
			if page.Limit <= 0 {
				page.Limit = defaultMedicationPageSize
			}
		}

		for {
			result, err := s.List(ctx, &page, opts...)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, medication := range result.Data {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				if !yield(medication, nil) {
					return
				}
			}

			if !result.HasMore() {
				return
			}
			page.Offset = result.NextOffset()
		}
	}
}

// Get retrieves a single medication by ID.
func (s *medicationService) Get(ctx context.Context, id string, opts ...RequestOption) (*Medication, error) {
	if err := validateID("medication", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Medication
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/medications/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "medication", id)
	}

	return &result, nil
}

// Update applies a partial update to an existing medication.
func (s *medicationService) Update(ctx context.Context, id string, req *UpdateMedicationRequest, opts ...RequestOption) (*Medication, error) {
	if err := validateID("medication", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Medication
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPatch,
		Path:    "/v1/medications/" + url.PathEscape(id),
		Body:    req,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "medication", id)
	}

	return &result, nil
}

// Delete soft-deletes a medication.
func (s *medicationService) Delete(ctx context.Context, id string, opts ...RequestOption) error {
	if err := validateID("medication", id); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodDelete,
		Path:    "/v1/medications/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, nil)
	if err != nil {
		return decorateNotFound(err, "medication", id)
	}

	return nil
}
