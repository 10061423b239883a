package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ai4health/triage-api/schema"
)

var (
	ErrPatientExists  = fmt.Errorf("phone number is already registered")
	ErrRecordNotFound = fmt.Errorf("record not found")
)

// CreatePatient registers a patient. A phone number can only be registered once.
func (s *TriageStore) CreatePatient(name, phone, passwordHash string, consent bool) (*schema.Patient, error) {
	p := schema.Patient{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		PasswordHash: passwordHash,
		Consent:      consent,
	}

	if err := s.ormDB.Create(&p).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrPatientExists
		}
		return nil, err
	}
	return &p, nil
}

func (s *TriageStore) GetPatient(id uuid.UUID) (*schema.Patient, error) {
	var p schema.Patient
	if err := s.ormDB.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &p, nil
}

func (s *TriageStore) GetPatientByPhone(phone string) (*schema.Patient, error) {
	var p schema.Patient
	if err := s.ormDB.Where("phone = ?", phone).First(&p).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &p, nil
}

func (s *TriageStore) GetDoctor(id int64) (*schema.Doctor, error) {
	var d schema.Doctor
	if err := s.ormDB.Where("id = ?", id).First(&d).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &d, nil
}

func (s *TriageStore) GetMedicByPhone(phone string) (*schema.Medic, error) {
	var m schema.Medic
	if err := s.ormDB.Where("phone = ?", phone).First(&m).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &m, nil
}
