package medicamenta

// PatientStatus represents the lifecycle status of a patient record.
type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
	PatientStatusDeleted  PatientStatus = "deleted"
)

// DoseStatus represents the outcome of a scheduled dose.
type DoseStatus string

const (
	DoseTaken   DoseStatus = "taken"
	DoseMissed  DoseStatus = "missed"
	DoseSkipped DoseStatus = "skipped"
	DosePending DoseStatus = "pending"
)

// Patient represents a patient record.
// Dates are transmitted as strings: dateOfBirth as YYYY-MM-DD,
// timestamps as RFC 3339.
type Patient struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Email             string        `json:"email,omitempty"`
	Phone             string        `json:"phone,omitempty"`
	DateOfBirth       string        `json:"dateOfBirth"`
	Gender            string        `json:"gender,omitempty"`
	MedicalConditions []string      `json:"medicalConditions,omitempty"`
	Allergies         []string      `json:"allergies,omitempty"`
	Status            PatientStatus `json:"status,omitempty"`
	CreatedAt         string        `json:"createdAt,omitempty"`
	UpdatedAt         string        `json:"updatedAt,omitempty"`
}

// Medication represents a prescribed medication and its dosing schedule.
type Medication struct {
	ID            string   `json:"id"`
	PatientID     string   `json:"patientId"`
	Name          string   `json:"name"`
	Dosage        string   `json:"dosage"`
	Frequency     string   `json:"frequency"`
	Times         []string `json:"times"`
	Instructions  string   `json:"instructions,omitempty"`
	AdherenceRate float64  `json:"adherenceRate,omitempty"`
	Status        string   `json:"status,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
}

// DoseEvent is one entry in a patient's dose history.
type DoseEvent struct {
	ID            string     `json:"id"`
	PatientID     string     `json:"patientId"`
	MedicationID  string     `json:"medicationId"`
	ScheduledTime string     `json:"scheduledTime"`
	TakenAt       string     `json:"takenAt,omitempty"`
	Status        DoseStatus `json:"status,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// AdherenceMetrics are the computed adherence figures for one patient.
type AdherenceMetrics struct {
	PatientID    string                 `json:"patientId"`
	Metrics      AdherenceTotals        `json:"metrics"`
	ByMedication []*MedicationAdherence `json:"byMedication,omitempty"`
}

// AdherenceTotals aggregates dose outcomes over the queried period.
type AdherenceTotals struct {
	TotalDoses    int     `json:"totalDoses"`
	TakenDoses    int     `json:"takenDoses"`
	MissedDoses   int     `json:"missedDoses"`
	SkippedDoses  int     `json:"skippedDoses"`
	PendingDoses  int     `json:"pendingDoses"`
	AdherenceRate float64 `json:"adherenceRate"`
}

// MedicationAdherence is the per-medication breakdown within AdherenceMetrics.
type MedicationAdherence struct {
	MedicationID   string  `json:"medicationId"`
	MedicationName string  `json:"medicationName,omitempty"`
	AdherenceRate  float64 `json:"adherenceRate"`
}

// Webhook represents a webhook subscription.
type Webhook struct {
	ID     string   `json:"id"`
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Status string   `json:"status,omitempty"`
	Secret string   `json:"secret,omitempty"`
}

// Report holds report endpoint results. Report shapes vary by report type
// and are not modeled field by field.
type Report map[string]any

// Pagination describes the position of a page within a listing.
type Pagination struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// PatientPage is one page of patient listing results.
type PatientPage struct {
	Data       []*Patient `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// HasMore returns true if there are more pages available.
func (p *PatientPage) HasMore() bool {
	return p.Pagination.Offset+len(p.Data) < p.Pagination.Total
}

// NextOffset returns the offset for the next page.
func (p *PatientPage) NextOffset() int {
	return p.Pagination.Offset + len(p.Data)
}

// MedicationPage is one page of medication listing results.
type MedicationPage struct {
	Data       []*Medication `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// HasMore returns true if there are more pages available.
func (p *MedicationPage) HasMore() bool {
	return p.Pagination.Offset+len(p.Data) < p.Pagination.Total
}

// NextOffset returns the offset for the next page.
func (p *MedicationPage) NextOffset() int {
	return p.Pagination.Offset + len(p.Data)
}

// DoseHistoryPage is one page of dose history results.
type DoseHistoryPage struct {
	Data       []*DoseEvent `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// HasMore returns true if there are more pages available.
func (p *DoseHistoryPage) HasMore() bool {
	return p.Pagination.Offset+len(p.Data) < p.Pagination.Total
}

// NextOffset returns the offset for the next page.
func (p *DoseHistoryPage) NextOffset() int {
	return p.Pagination.Offset + len(p.Data)
}

// CreatePatientRequest contains data for creating a new patient.
// Name and DateOfBirth are required by the API; the client does not
// validate them locally.
type CreatePatientRequest struct {
	Name              string   `json:"name"`
	DateOfBirth       string   `json:"dateOfBirth"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Gender            string   `json:"gender,omitempty"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
}

// UpdatePatientRequest contains a partial field set for updating a patient.
// Nil fields are omitted from the request entirely.
type UpdatePatientRequest struct {
	Name              *string        `json:"name,omitempty"`
	DateOfBirth       *string        `json:"dateOfBirth,omitempty"`
	Email             *string        `json:"email,omitempty"`
	Phone             *string        `json:"phone,omitempty"`
	Gender            *string        `json:"gender,omitempty"`
	MedicalConditions []string       `json:"medicalConditions,omitempty"`
	Allergies         []string       `json:"allergies,omitempty"`
	Status            *PatientStatus `json:"status,omitempty"`
}

// ListPatientsOptions filters patient listings. Zero values are omitted
// from the query.
type ListPatientsOptions struct {
	Limit  int
	Offset int
	Status PatientStatus
	Search string
}

// CreateMedicationRequest contains data for creating a medication.
// PatientID, Name, Dosage, Frequency and Times are required by the API.
type CreateMedicationRequest struct {
	PatientID    string   `json:"patientId"`
	Name         string   `json:"name"`
	Dosage       string   `json:"dosage"`
	Frequency    string   `json:"frequency"`
	Times        []string `json:"times"`
	Instructions string   `json:"instructions,omitempty"`
}

// UpdateMedicationRequest contains a partial field set for updating a
// medication. Nil fields are omitted from the request entirely.
type UpdateMedicationRequest struct {
	Name         *string  `json:"name,omitempty"`
	Dosage       *string  `json:"dosage,omitempty"`
	Frequency    *string  `json:"frequency,omitempty"`
	Times        []string `json:"times,omitempty"`
	Instructions *string  `json:"instructions,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// ListMedicationsOptions filters medication listings.
type ListMedicationsOptions struct {
	PatientID string
	Status    string
	Limit     int
	Offset    int
}

// AdherenceOptions narrows an adherence metrics query.
// Dates use the YYYY-MM-DD format.
type AdherenceOptions struct {
	StartDate    string
	EndDate      string
	MedicationID string
}

// DoseHistoryOptions filters dose history listings.
type DoseHistoryOptions struct {
	Limit        int
	Offset       int
	Status       DoseStatus
	MedicationID string
}

// ConfirmDoseRequest records that a scheduled dose was taken.
// PatientID, MedicationID and ScheduledTime are required by the API.
type ConfirmDoseRequest struct {
	PatientID     string `json:"patientId"`
	MedicationID  string `json:"medicationId"`
	ScheduledTime string `json:"scheduledTime"`
	TakenAt       string `json:"takenAt,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// AdherenceReportOptions narrows an adherence report query.
type AdherenceReportOptions struct {
	StartDate string
	EndDate   string
	PatientID string
}

// ExportReportRequest describes a report export.
// Format defaults to "json" when empty.
type ExportReportRequest struct {
	ReportType string `json:"reportType"`
	Format     string `json:"format"`
}

// CreateWebhookRequest contains data for creating a webhook subscription.
// Secret is optional and passed through unchanged.
type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
}

// WebhookTestResult is the outcome of a test delivery.
type WebhookTestResult struct {
	Delivered  bool   `json:"delivered"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}
