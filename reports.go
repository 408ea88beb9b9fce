package medicamenta

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medicamenta/go-medicamenta/internal/api"
)

// DefaultExportFormat is used when ExportReportRequest.Format is empty.
const DefaultExportFormat = "json"

// ReportService provides access to aggregate reports.
type ReportService interface {
	// Adherence retrieves the adherence report.
	Adherence(ctx context.Context, options *AdherenceReportOptions, opts ...RequestOption) (Report, error)

	// Compliance retrieves the compliance report.
	Compliance(ctx context.Context, opts ...RequestOption) (Report, error)

	// Export generates an export of the given report type.
	Export(ctx context.Context, req *ExportReportRequest, opts ...RequestOption) (Report, error)
}

type reportService struct {
	transport *api.Transport
}

func newReportService(transport *api.Transport) *reportService {
	return &reportService{transport: transport}
}

// Adherence retrieves the adherence report.
func (s *reportService) Adherence(ctx context.Context, options *AdherenceReportOptions, opts ...RequestOption) (Report, error) {
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
		if options.PatientID != "" {
			query.Set("patientId", options.PatientID)
		}
	}

	var result Report
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/reports/adherence",
		Query:   query,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Compliance retrieves the compliance report.
func (s *reportService) Compliance(ctx context.Context, opts ...RequestOption) (Report, error) {
	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	var result Report
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodGet,
		Path:    "/v1/reports/compliance",
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Export generates an export of the given report type.
func (s *reportService) Export(ctx context.Context, req *ExportReportRequest, opts ...RequestOption) (Report, error) {
	if req == nil {
		return nil, &ValidationError{
			APIError: APIError{Message: "export request cannot be nil"},
		}
	}

	reqCfg := newRequestConfig()
	reqCfg.apply(opts...)

	body := ExportReportRequest{
		ReportType: req.ReportType,
		Format:     req.Format,
	}
	if body.Format == "" {
		body.Format = DefaultExportFormat
	}

	var result Report
	err := do(ctx, s.transport, &api.Request{
		Method:  http.MethodPost,
		Path:    "/v1/reports/export",
		Body:    &body,
		Headers: reqCfg.headers,
	}, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}
