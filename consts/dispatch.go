package consts

import "time"

// Dispatch priorities range from 1 (lowest) to 5 (highest)
const (
	TeleconsultPriorityThreshold = 2
	AmbulancePriorityThreshold   = 3
	EmergencySpecialtyPriority   = 4
)

// Ambulance ETA in minutes
const (
	DefaultAmbulanceETA      = 12
	MinAmbulanceETA          = 5
	DefaultAmbulanceSpeedKmh = 40.0
)

const (
	DefaultEscalationGrace = 10 * time.Minute
	DefaultMaxEscalations  = 2
)

// ExpectedArrivalLayout formats the wall clock arrival of a doctor or an ambulance
const ExpectedArrivalLayout = "15:04:05"

var DatasetTypes = []string{"chest", "skin", "wound"}

// ValidDatasetType reports whether an image dataset is known to the vision model
func ValidDatasetType(datasetType string) bool {
	for _, t := range DatasetTypes {
		if t == datasetType {
			return true
		}
	}
	return false
}
