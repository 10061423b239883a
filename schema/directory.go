package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Specialties is stored as a jsonb array
type Specialties []string

func (s Specialties) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Specialties) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, s)
}

// Has reports whether the hospital list contains the given specialty
func (s Specialties) Has(specialty string) bool {
	for _, v := range s {
		if v == specialty {
			return true
		}
	}
	return false
}

type Hospital struct {
	ID          int64       `json:"id" gorm:"primary_key"`
	Name        string      `json:"name"`
	Specialties Specialties `json:"specialties" gorm:"type:jsonb;not null;default:'[]'"`
	Address     string      `json:"address"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	ETAMinutes  int         `json:"eta_minutes"`
	Reviews     float64     `json:"reviews"`
	Phone       string      `json:"phone"`
}

func (h Hospital) Location() Location {
	return Location{Latitude: h.Lat, Longitude: h.Lng}
}

type Doctor struct {
	ID           int64  `json:"id" gorm:"primary_key"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty" gorm:"index"`
	Phone        string `json:"phone"`
	HospitalID   int64  `json:"hospital_id"`
	Verified     bool   `json:"verified"`
	PasswordHash string `json:"-"`
}

type Medic struct {
	ID              int64  `json:"id" gorm:"primary_key"`
	Name            string `json:"name"`
	Phone           string `json:"phone" gorm:"unique_index"`
	Role            string `json:"role"`
	NGOID           int64  `json:"ngo_id"`
	ExperienceYears int    `json:"experience_years"`
	Verified        bool   `json:"verified"`
	PasswordHash    string `json:"-"`
}

// NGO is an ambulance partner
type NGO struct {
	ID           int64   `json:"id" gorm:"primary_key"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	CoverageArea string  `json:"coverage_area"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
}

func (n NGO) Location() Location {
	return Location{Latitude: n.Lat, Longitude: n.Lng}
}
