package score

import (
	"sort"

	"github.com/ai4health/triage-api/schema"
)

var criticalSymptoms = map[string]int{
	"cardiac arrest":             40,
	"blood in stool":             30,
	"blood in vomit":             30,
	"blood cough":                30,
	"fainting":                   25,
	"fracture":                   20,
	"chest pain":                 25,
	"severe shortness of breath": 30,
	"unconsciousness":            40,
}

var moderateSymptoms = map[string]int{
	"high fever":                   15,
	"severe headache":              10,
	"significant swelling":         10,
	"large bruises":                10,
	"persistent vomiting":          15,
	"persistent diarrhea":          15,
	"moderate shortness of breath": 15,
	"moderate chest pain":          15,
}

var mildSymptoms = map[string]int{
	"cough":         5,
	"fatigue":       5,
	"headache":      5,
	"stomach ache":  5,
	"minor bruises": 3,
	"mild fever":    5,
	"sore throat":   3,
}

// heart, lung, kidney, diabetes etc. add more risk
var highRiskConditions = map[string]struct{}{
	"heart disease":  {},
	"lung disease":   {},
	"kidney disease": {},
	"diabetes":       {},
	"hypertension":   {},
}

func copyTable(t map[string]int) map[string]int {
	c := make(map[string]int, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// CriticalSymptoms returns a copy of the critical symptom table
func CriticalSymptoms() map[string]int { return copyTable(criticalSymptoms) }

// ModerateSymptoms returns a copy of the moderate symptom table
func ModerateSymptoms() map[string]int { return copyTable(moderateSymptoms) }

// MildSymptoms returns a copy of the mild symptom table
func MildSymptoms() map[string]int { return copyTable(mildSymptoms) }

// HighRiskConditions returns the sorted list of comorbidities which raise the score
func HighRiskConditions() []string {
	conditions := make([]string, 0, len(highRiskConditions))
	for c := range highRiskConditions {
		conditions = append(conditions, c)
	}
	sort.Strings(conditions)
	return conditions
}

// Catalog lists every recognized symptom phrase, ordered by tier then
// by points (descending) and phrase.
func Catalog() []schema.SymptomEntry {
	entries := make([]schema.SymptomEntry, 0, len(criticalSymptoms)+len(moderateSymptoms)+len(mildSymptoms))
	for _, t := range []struct {
		tier  schema.SymptomTier
		table map[string]int
	}{
		{schema.CriticalTier, criticalSymptoms},
		{schema.ModerateTier, moderateSymptoms},
		{schema.MildTier, mildSymptoms},
	} {
		start := len(entries)
		for phrase, points := range t.table {
			entries = append(entries, schema.SymptomEntry{
				ID:     schema.SymptomID(phrase),
				Phrase: phrase,
				Name:   phrase,
				Tier:   t.tier,
				Points: points,
			})
		}

		tierEntries := entries[start:]
		sort.Slice(tierEntries, func(i, j int) bool {
			if tierEntries[i].Points != tierEntries[j].Points {
				return tierEntries[i].Points > tierEntries[j].Points
			}
			return tierEntries[i].Phrase < tierEntries[j].Phrase
		})
	}
	return entries
}
