package schema

const (
	MedicalHistoryCollection = "medicalHistory"
	TriageReportCollection   = "triageReport"
	DispatchCollection       = "dispatch"
	AuditEventCollection     = "auditEvent"
)

// MedicalRecord is a free-form record a patient keeps in the history
type MedicalRecord struct {
	Timestamp int64                  `json:"ts"`
	Data      map[string]interface{} `json:"data"`
}

// SealedRecord is the at-rest form of a medical record. Payload is
// the encrypted json of the record.
type SealedRecord struct {
	PatientID string `bson:"patient_id"`
	Payload   []byte `bson:"payload"`
	Timestamp int64  `bson:"ts"`
}

// TriageReport keeps the outcome of a diagnose request
type TriageReport struct {
	ID              string              `json:"id" bson:"_id"`
	PatientID       string              `json:"patient_id,omitempty" bson:"patient_id,omitempty"`
	NormalizedInput string              `json:"normalized_input" bson:"normalized_input"`
	Predictions     []DiseasePrediction `json:"top_5_diseases" bson:"predictions"`
	VisionResult    *VisionResult       `json:"vision_result" bson:"vision_result,omitempty"`
	Report          SymptomReport       `json:"report" bson:"report"`
	Severity        SeverityResult      `json:"severity" bson:"severity"`
	Emergency       bool                `json:"emergency" bson:"emergency"`
	Timestamp       int64               `json:"ts" bson:"ts"`
}

type AuditEvent struct {
	UserID    string `json:"user_id" bson:"user_id"`
	Action    string `json:"action" bson:"action"`
	Status    string `json:"status" bson:"status"`
	Timestamp int64  `json:"ts" bson:"ts"`
}
