package score

import (
	"strings"

	"github.com/ai4health/triage-api/schema"
)

const (
	MaxSeverityScore = 100

	SevereThreshold   = 60
	ModerateThreshold = 30

	comorbidityPoints = 5
)

// Mode decides how a symptom found in more than one table is counted
type Mode int

const (
	// ModeAdditive consults every table independently and adds all hits
	ModeAdditive Mode = iota
	// ModeHighestTier counts only the first hit in the order critical,
	// moderate, mild
	ModeHighestTier
)

// Severity scores a symptom report with the additive table lookup.
func Severity(report schema.SymptomReport) schema.SeverityResult {
	return SeverityWithMode(report, ModeAdditive)
}

// SeverityWithMode scores a symptom report. It never fails: unknown
// symptoms and comorbidities contribute nothing and absent vitals are
// skipped.
func SeverityWithMode(report schema.SymptomReport, mode Mode) schema.SeverityResult {
	total := symptomPoints(report.Symptoms, mode) +
		VitalsPoints(report.Vitals) +
		AgePoints(report.Age) +
		ComorbidityPoints(report.Comorbidities)

	if total > MaxSeverityScore {
		total = MaxSeverityScore
	}

	return schema.SeverityResult{
		Score: total,
		Level: Level(total),
	}
}

// Level maps a clamped score to its tier. Lower bounds are inclusive.
func Level(score int) schema.SeverityLevel {
	switch {
	case score >= SevereThreshold:
		return schema.SeveritySevere
	case score >= ModerateThreshold:
		return schema.SeverityModerate
	default:
		return schema.SeverityMild
	}
}

func symptomPoints(symptoms []string, mode Mode) int {
	total := 0
	for _, s := range symptoms {
		key := strings.ToLower(s)
		switch mode {
		case ModeHighestTier:
			if p, ok := criticalSymptoms[key]; ok {
				total += p
			} else if p, ok := moderateSymptoms[key]; ok {
				total += p
			} else {
				total += mildSymptoms[key]
			}
		default:
			total += criticalSymptoms[key]
			total += moderateSymptoms[key]
			total += mildSymptoms[key]
		}
	}
	return total
}

// VitalsPoints scores each present vital independently. A zero reading is
// treated as absent.
func VitalsPoints(v *schema.VitalSigns) int {
	if v == nil {
		return 0
	}

	total := 0
	if temp, ok := reading(v.Temp); ok {
		if temp >= 40 {
			total += 15
		} else if temp >= 38 {
			total += 10
		}
	}

	if spo2, ok := reading(v.SpO2); ok {
		if spo2 < 90 {
			total += 25
		} else if spo2 < 94 {
			total += 15
		}
	}

	// a single blood pressure value is compared against both systolic and
	// diastolic style bounds
	if bp, ok := reading(v.BP); ok {
		if bp > 180 || bp < 80 {
			total += 15
		} else if bp > 140 || bp < 90 {
			total += 5
		}
	}

	if hr, ok := reading(v.HR); ok {
		if hr > 120 || hr < 50 {
			total += 10
		}
	}

	return total
}

func reading(v *float64) (float64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}

func AgePoints(age *int) int {
	if age == nil {
		return 0
	}

	switch {
	case *age >= 70:
		return 10
	case *age >= 60:
		return 5
	default:
		return 0
	}
}

// ComorbidityPoints adds a fixed amount for every high risk condition,
// repeated entries included.
func ComorbidityPoints(comorbidities []string) int {
	total := 0
	for _, c := range comorbidities {
		if _, ok := highRiskConditions[strings.ToLower(c)]; ok {
			total += comorbidityPoints
		}
	}
	return total
}
