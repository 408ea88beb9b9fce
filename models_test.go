package medicamenta_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicamenta/go-medicamenta"
)

func TestPatientPage(t *testing.T) {
	t.Run("HasMore true", func(t *testing.T) {
		page := &medicamenta.PatientPage{
			Data:       make([]*medicamenta.Patient, 20),
			Pagination: medicamenta.Pagination{Total: 50, Limit: 20, Offset: 0},
		}
		assert.True(t, page.HasMore())
		assert.Equal(t, 20, page.NextOffset())
	})

	t.Run("HasMore false at end", func(t *testing.T) {
		page := &medicamenta.PatientPage{
			Data:       make([]*medicamenta.Patient, 10),
			Pagination: medicamenta.Pagination{Total: 50, Limit: 20, Offset: 40},
		}
		assert.False(t, page.HasMore())
	})

	t.Run("HasMore false exact fit", func(t *testing.T) {
		page := &medicamenta.PatientPage{
			Data:       make([]*medicamenta.Patient, 20),
			Pagination: medicamenta.Pagination{Total: 20, Limit: 20, Offset: 0},
		}
		assert.False(t, page.HasMore())
	})

	t.Run("empty page", func(t *testing.T) {
		page := &medicamenta.PatientPage{}
		assert.False(t, page.HasMore())
	})
}

func TestPatientJSONSerialization(t *testing.T) {
	t.Run("unmarshal from API response", func(t *testing.T) {
		jsonData := `{
			"id": "pat-123",
			"name": "João Silva",
			"email": "joao@example.com",
			"dateOfBirth": "1980-05-15",
			"gender": "M",
			"medicalConditions": ["diabetes", "hypertension"],
			"allergies": ["penicillin"],
			"status": "active",
			"createdAt": "2024-01-15T10:30:00Z"
		}`

		var patient medicamenta.Patient
		err := json.Unmarshal([]byte(jsonData), &patient)
		require.NoError(t, err)

		assert.Equal(t, "pat-123", patient.ID)
		assert.Equal(t, "João Silva", patient.Name)
		assert.Equal(t, "1980-05-15", patient.DateOfBirth)
		assert.Equal(t, medicamenta.PatientStatusActive, patient.Status)
		assert.Len(t, patient.MedicalConditions, 2)
		assert.Equal(t, []string{"penicillin"}, patient.Allergies)
	})

	t.Run("marshal uses camelCase wire names", func(t *testing.T) {
		patient := &medicamenta.Patient{
			ID:          "pat-1",
			Name:        "Maria Souza",
			DateOfBirth: "1975-01-02",
		}

		data, err := json.Marshal(patient)
		require.NoError(t, err)

		var result map[string]any
		err = json.Unmarshal(data, &result)
		require.NoError(t, err)

		assert.Equal(t, "1975-01-02", result["dateOfBirth"])
		assert.NotContains(t, result, "date_of_birth")
		assert.NotContains(t, result, "email")
	})
}

func TestMedicationJSONSerialization(t *testing.T) {
	jsonData := `{
		"id": "med-1",
		"patientId": "pat-1",
		"name": "Metformin",
		"dosage": "500mg",
		"frequency": "twice_daily",
		"times": ["08:00", "20:00"],
		"adherenceRate": 0.87,
		"status": "active"
	}`

	var medication medicamenta.Medication
	err := json.Unmarshal([]byte(jsonData), &medication)
	require.NoError(t, err)

	assert.Equal(t, "pat-1", medication.PatientID)
	assert.Equal(t, []string{"08:00", "20:00"}, medication.Times)
	assert.InDelta(t, 0.87, medication.AdherenceRate, 0.001)
}

func TestUpdateRequestOmission(t *testing.T) {
	t.Run("nil pointer fields are omitted", func(t *testing.T) {
		status := medicamenta.PatientStatusInactive
		req := &medicamenta.UpdatePatientRequest{
			Status: &status,
		}

		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"inactive"}`, string(data))
	})

	t.Run("set empty string is transmitted", func(t *testing.T) {
		phone := ""
		req := &medicamenta.UpdatePatientRequest{
			Phone: &phone,
		}

		data, err := json.Marshal(req)
		require.NoError(t, err)
		assert.JSONEq(t, `{"phone":""}`, string(data))
	})
}

func TestDoseStatusValues(t *testing.T) {
	assert.Equal(t, medicamenta.DoseTaken, medicamenta.DoseStatus("taken"))
	assert.Equal(t, medicamenta.DoseMissed, medicamenta.DoseStatus("missed"))
	assert.Equal(t, medicamenta.DoseSkipped, medicamenta.DoseStatus("skipped"))
	assert.Equal(t, medicamenta.DosePending, medicamenta.DoseStatus("pending"))
}

func TestAdherenceMetricsJSONSerialization(t *testing.T) {
	jsonData := `{
		"patientId": "pat-1",
		"metrics": {
			"totalDoses": 60,
			"takenDoses": 54,
			"missedDoses": 4,
			"skippedDoses": 2,
			"pendingDoses": 0,
			"adherenceRate": 0.9
		},
		"byMedication": [
			{"medicationId": "med-1", "medicationName": "Metformin", "adherenceRate": 0.95}
		]
	}`

	var metrics medicamenta.AdherenceMetrics
	err := json.Unmarshal([]byte(jsonData), &metrics)
	require.NoError(t, err)

	assert.Equal(t, 60, metrics.Metrics.TotalDoses)
	assert.Equal(t, 2, metrics.Metrics.SkippedDoses)
	require.Len(t, metrics.ByMedication, 1)
	assert.InDelta(t, 0.95, metrics.ByMedication[0].AdherenceRate, 0.001)
}
