package schema

type SeverityLevel string

const (
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
)

// VitalSigns carries the optional physiological readings of a report.
// A nil field is not scored.
type VitalSigns struct {
	Temp *float64 `json:"temp,omitempty" bson:"temp,omitempty" yaml:"temp,omitempty"`
	BP   *float64 `json:"bp,omitempty" bson:"bp,omitempty" yaml:"bp,omitempty"`
	SpO2 *float64 `json:"spo2,omitempty" bson:"spo2,omitempty" yaml:"spo2,omitempty"`
	HR   *float64 `json:"hr,omitempty" bson:"hr,omitempty" yaml:"hr,omitempty"`
}

// SymptomReport is the per-request input of the severity scorer
type SymptomReport struct {
	Symptoms      []string    `json:"symptoms" bson:"symptoms" yaml:"symptoms"`
	Vitals        *VitalSigns `json:"vitals,omitempty" bson:"vitals,omitempty" yaml:"vitals,omitempty"`
	Age           *int        `json:"age,omitempty" bson:"age,omitempty" yaml:"age,omitempty"`
	Comorbidities []string    `json:"comorbidities" bson:"comorbidities" yaml:"comorbidities"`
}

type SeverityResult struct {
	Score int           `json:"severity_score" bson:"severity_score" yaml:"severity_score"`
	Level SeverityLevel `json:"severity_level" bson:"severity_level" yaml:"severity_level"`
}

// Float64 returns a pointer of a float64 value. It is a helper for
// building optional vitals.
func Float64(v float64) *float64 {
	return &v
}

// Int returns a pointer of an int value
func Int(v int) *int {
	return &v
}
