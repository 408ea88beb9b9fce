package medicamenta

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/medicamenta/go-medicamenta/internal/api"
)

const defaultPatientPageSize = 20

// PatientService provides operations on patient records.
type PatientService interface {
	// Create creates a new patient.
	Create(ctx context.Context, req *CreatePatientRequest, opts ...RequestOption) (*Patient, error)

	// List returns a single page of patients.
	List(ctx context.Context, options *ListPatientsOptions, opts ...RequestOption) (*PatientPage, error)

	// ListAll returns an iterator over all patients matching the options.
	// Pages are fetched lazily as you iterate.
	ListAll(ctx context.Context, options *ListPatientsOptions, opts ...RequestOption) iter.Seq2[*Patient, error]

	// Get retrieves a single patient by ID.
	Get(ctx context.Context, id string, opts ...RequestOption) (*Patient, error)

	// Update applies a partial update to an existing patient.
	Update(ctx context.Context, id string, req *UpdatePatientRequest, opts ...RequestOption) (*Patient, error)

	// Delete removes a patient. A soft delete (hard=false) marks the
	// record deleted; hard=true removes it permanently.
	Delete(ctx context.Context, id string, hard bool, opts ...RequestOption) error
}

type patientService struct {
	transport *api.Transport
}

func newPatientService(transport *api.Transport) *patientService {
	return &patientService{transport: transport}
}

// Create creates a new patient.
func (s *patientService) Create(ctx context.Context, req *CreatePatientRequest, opts ...RequestOption) (*Patient, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Patient
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPost,
		Path:    "/v1/patients",
		Body:    req,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// List returns a single page of patients.
func (s *patientService) List(ctx context.Context, options *ListPatientsOptions, opts ...RequestOption) (*PatientPage, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	query := url.Values{}
	if options != nil {
		if options.Limit > 0 {
			query.Set("limit", strconv.Itoa(options.Limit))
		}
		if options.Offset > 0 {
			query.Set("offset", strconv.Itoa(options.Offset))
		}
		if options.Status != "" {
			query.Set("status", string(options.Status))
		}
		if options.Search != "" {
			query.Set("search", options.Search)
		}
	}

	var result PatientPage
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/patients",
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ListAll returns an iterator over all patients matching the options.
func (s *patientService) ListAll(ctx context.Context, options *ListPatientsOptions, opts ...RequestOption) iter.Seq2[*Patient, error] {
	return func(yield func(*Patient, error) bool) {
		page := ListPatientsOptions{Limit: defaultPatientPageSize}
		if options != nil {
			page = *options
			if page.Limit <= 0 {
				page.Limit = defaultPatientPageSize
			}
		}

		for {
			result, err := s.List(ctx, &page, opts...)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, patient := range result.Data {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				if !yield(patient, nil) {
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

// Get retrieves a single patient by ID.
func (s *patientService) Get(ctx context.Context, id string, opts ...RequestOption) (*Patient, error) {
	if err := validateID("patient", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Patient
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/patients/" + url.PathEscape(id),
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "patient", id)
	}

	return &result, nil
}

// Update applies a partial update to an existing patient.
func (s *patientService) Update(ctx context.Context, id string, req *UpdatePatientRequest, opts ...RequestOption) (*Patient, error) {
	if err := validateID("patient", id); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Patient
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPatch,
		Path:    "/v1/patients/" + url.PathEscape(id),
		Body:    req,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "patient", id)
	}

	return &result, nil
}

// Delete removes a patient. The hard flag is always transmitted
// explicitly as ?hard=true or ?hard=false.
func (s *patientService) Delete(ctx context.Context, id string, hard bool, opts ...RequestOption) error {
	if err := validateID("patient", id); err != nil {
		return err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	query := url.Values{}
	query.Set("hard", strconv.FormatBool(hard))

	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodDelete,
		Path:    "/v1/patients/" + url.PathEscape(id),
		Query:   query,
		Headers: reqCfg.headers,
	}, nil)
	if err != nil {
		return decorateNotFound(err, "patient", id)
	}

	return nil
}
