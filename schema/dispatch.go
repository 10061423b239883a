package schema

const (
	ConsultTeleconsult = "teleconsult"
	ConsultEmergency   = "emergency"

	AmbulanceDispatched = "Dispatched"
	AmbulanceNotNeeded  = "ambulance not needed"
)

type DoctorAssignment struct {
	ID              int64  `json:"id" bson:"id"`
	ConsultType     string `json:"consult_type" bson:"consult_type"`
	DoctorName      string `json:"doctor_name" bson:"doctor_name"`
	Specialty       string `json:"specialty" bson:"specialty"`
	Contact         string `json:"contact" bson:"contact"`
	HospitalID      int64  `json:"hospital_id,omitempty" bson:"hospital_id,omitempty"`
	ETAMinutes      int    `json:"eta_min,omitempty" bson:"eta_min,omitempty"`
	ExpectedArrival string `json:"expected_arrival,omitempty" bson:"expected_arrival,omitempty"`
}

type AmbulanceAssignment struct {
	Status          string `json:"status" bson:"status"`
	NGOID           int64  `json:"ngo_id,omitempty" bson:"ngo_id,omitempty"`
	AmbulanceName   string `json:"ambulance_name,omitempty" bson:"ambulance_name,omitempty"`
	Contact         string `json:"contact,omitempty" bson:"contact,omitempty"`
	ETAMinutes      int    `json:"eta_min,omitempty" bson:"eta_min,omitempty"`
	ExpectedArrival string `json:"expected_arrival,omitempty" bson:"expected_arrival,omitempty"`
}

// Dispatched reports whether an ambulance is on the way
func (a *AmbulanceAssignment) Dispatched() bool {
	return a != nil && a.Status == AmbulanceDispatched
}

type DispatchRecord struct {
	ID              string              `json:"id" bson:"_id"`
	Symptoms        []string            `json:"symptoms" bson:"symptoms"`
	Priority        int                 `json:"priority" bson:"priority"`
	Location        *Location           `json:"location,omitempty" bson:"location,omitempty"`
	Doctor          DoctorAssignment    `json:"assigned_doctor" bson:"doctor"`
	Ambulance       AmbulanceAssignment `json:"ambulance_service" bson:"ambulance"`
	PreviousNGOs    []int64             `json:"previous_ngos,omitempty" bson:"previous_ngos,omitempty"`
	EscalationLevel int                 `json:"escalation_level" bson:"escalation_level"`
	Arrived         bool                `json:"arrived" bson:"arrived"`
	ArrivedAt       int64               `json:"arrived_at,omitempty" bson:"arrived_at,omitempty"`
	Timestamp       int64               `json:"ts" bson:"ts"`
}
