package medicamenta_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicamenta/go-medicamenta"
)

func TestReportService_Adherence(t *testing.T) {
	t.Run("success with filters", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/reports/adherence", r.URL.Path)

			query := r.URL.Query()
			assert.Equal(t, "2024-01-01", query.Get("startDate"))
			assert.Equal(t, "2024-01-31", query.Get("endDate"))
			assert.Equal(t, "pat-1", query.Get("patientId"))

			w.Write([]byte(`{"overallRate":0.92,"patientCount":14}`))
		})

		report, err := client.Reports.Adherence(context.Background(), &medicamenta.AdherenceReportOptions{
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			PatientID: "pat-1",
		})
		require.NoError(t, err)

		assert.InDelta(t, 0.92, report["overallRate"], 0.001)
		assert.InDelta(t, float64(14), report["patientCount"], 0.001)
	})

	t.Run("nil options sends no query", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			w.Write([]byte(`{}`))
		})

		_, err := client.Reports.Adherence(context.Background(), nil)
		require.NoError(t, err)
	})
}

func TestReportService_Compliance(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1/reports/compliance", r.URL.Path)
			assert.Empty(t, r.URL.RawQuery)

			w.Write([]byte(`{"compliant":120,"nonCompliant":8}`))
		})

		report, err := client.Reports.Compliance(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, float64(120), report["compliant"], 0.001)
	})

	t.Run("empty success body yields an empty report", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		report, err := client.Reports.Compliance(context.Background())
		require.NoError(t, err)
		assert.Empty(t, report)
	})
}

func TestReportService_Export(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/reports/export", r.URL.Path)

			var reqBody map[string]any
			err := json.NewDecoder(r.Body).Decode(&reqBody)
			assert.NoError(t, err)
			assert.Equal(t, "adherence", reqBody["reportType"])
			assert.Equal(t, "csv", reqBody["format"])

			w.Write([]byte(`{"url":"https://example.com/export.csv"}`))
		})

		report, err := client.Reports.Export(context.Background(), &medicamenta.ExportReportRequest{
			ReportType: "adherence",
			Format:     "csv",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/export.csv", report["url"])
	})

	t.Run("format defaults to json", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			var reqBody map[string]any
			err := json.NewDecoder(r.Body).Decode(&reqBody)
			assert.NoError(t, err)
			assert.Equal(t, "json", reqBody["format"])

			w.Write([]byte(`{}`))
		})

		_, err := client.Reports.Export(context.Background(), &medicamenta.ExportReportRequest{
			ReportType: "compliance",
		})
		require.NoError(t, err)
	})

	t.Run("nil request returns validation error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("should not make API call with nil request")
		})

		_, err := client.Reports.Export(context.Background(), nil)
		require.Error(t, err)

		var valErr *medicamenta.ValidationError
		require.ErrorAs(t, err, &valErr)
	})
}
