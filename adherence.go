package medicamenta

import (
	"context"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	"github.com/medicamenta/go-medicamenta/internal/api"
)

const defaultHistoryPageSize = 50

// AdherenceService provides access to adherence metrics and dose tracking.
type AdherenceService interface {
	// Get retrieves adherence metrics for a patient.
	Get(ctx context.Context, patientID string, options *AdherenceOptions, opts ...RequestOption) (*AdherenceMetrics, error)

	// History returns a single page of a patient's dose history.
	History(ctx context.Context, patientID string, options *DoseHistoryOptions, opts ...RequestOption) (*DoseHistoryPage, error)

	// HistoryAll returns an iterator over a patient's full dose history.
	// Pages are fetched lazily as you iterate.
	HistoryAll(ctx context.Context, patientID string, options *DoseHistoryOptions, opts ...RequestOption) iter.Seq2[*DoseEvent, error]

	// Confirm records that a scheduled dose was taken.
	Confirm(ctx context.Context, req *ConfirmDoseRequest, opts ...RequestOption) (*DoseEvent, error)
}

type adherenceService struct {
	transport *api.Transport
}

func newAdherenceService(transport *api.Transport) *adherenceService {
	return &adherenceService{transport: transport}
}

// Get retrieves adherence metrics for a patient.
func (s *adherenceService) Get(ctx context.Context, patientID string, options *AdherenceOptions, opts ...RequestOption) (*AdherenceMetrics, error) {
	if err := validateID("patient", patientID); err != nil {
		return nil, err
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	query := url.Values{}
	if options != nil {
		if options.StartDate != "" {
			query.Set("startDate", options.StartDate)
		}
		if options.EndDate != "" {
			query.Set("endDate", options.EndDate)
		}
		if options.MedicationID != "" {
			query.Set("medicationId", options.MedicationID)
		}
	}

	var result AdherenceMetrics
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/adherence/" + url.PathEscape(patientID),
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "patient", patientID)
	}

	return &result, nil
}

// History returns a single page of a patient's dose history.
func (s *adherenceService) History(ctx context.Context, patientID string, options *DoseHistoryOptions, opts ...RequestOption) (*DoseHistoryPage, error) {
	if err := validateID("patient", patientID); err != nil {
		return nil, err
	}

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
		if options.MedicationID != "" {
			query.Set("medicationId", options.MedicationID)
		}
	}

	var result DoseHistoryPage
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/adherence/" + url.PathEscape(patientID) + "/history",
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, decorateNotFound(err, "patient", patientID)
	}

	return &result, nil
}

// HistoryAll returns an iterator over a patient's full dose history.
func (s *adherenceService) HistoryAll(ctx context.Context, patientID string, options *DoseHistoryOptions, opts ...RequestOption) iter.Seq2[*DoseEvent, error] {
	return func(yield func(*DoseEvent, error) bool) {
		page := DoseHistoryOptions{Limit: defaultHistoryPageSize}
		if options != nil {
			page = *options
			if page.Limit <= 0 {
				page.Limit = defaultHistoryPageSize
			}
		}

		for {
			result, err := s.History(ctx, patientID, &page, opts...)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, dose := range result.Data {
				if err := ctx.Err(); err != nil {
					yield(nil, err)
					return
				}
				if !yield(dose, nil) {
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

// Confirm records that a scheduled dose was taken.
func (s *adherenceService) Confirm(ctx context.Context, req *ConfirmDoseRequest, opts ...RequestOption) (*DoseEvent, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result DoseEvent
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPost,
		Path:    "/v1/adherence/confirm",
		Body:    req,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
