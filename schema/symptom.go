package schema

import "strings"

type SymptomTier string

const (
	CriticalTier SymptomTier = "critical"
	ModerateTier SymptomTier = "moderate"
	MildTier     SymptomTier = "mild"
)

// SymptomEntry is a row of the symptom catalog exposed to clients
type SymptomEntry struct {
	ID     string      `json:"id"`
	Phrase string      `json:"phrase"`
	Name   string      `json:"name"`
	Tier   SymptomTier `json:"tier"`
	Points int         `json:"points"`
}

// SymptomID returns the catalog id of a symptom phrase, e.g.
// "chest pain" becomes "chest_pain"
func SymptomID(phrase string) string {
	return strings.ReplaceAll(strings.TrimSpace(strings.ToLower(phrase)), " ", "_")
}

// DiseasePrediction is a single output row of the symptom classifier
type DiseasePrediction struct {
	Disease     string  `json:"disease" bson:"disease"`
	Probability float64 `json:"probability" bson:"probability"`
}

// VisionResult is the output of the image classifier
type VisionResult struct {
	PredClass  int     `json:"pred_class" bson:"pred_class"`
	Confidence float64 `json:"confidence" bson:"confidence"`
}
