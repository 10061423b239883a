package store

import (
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/ai4health/triage-api/schema"
)

// TriageCore - triage main datastore
type TriageCore interface {
	Ping() error

	// Patient
	CreatePatient(name, phone, passwordHash string, consent bool) (*schema.Patient, error)
	GetPatient(id uuid.UUID) (*schema.Patient, error)
	GetPatientByPhone(phone string) (*schema.Patient, error)

	// Care providers
	GetDoctor(id int64) (*schema.Doctor, error)
	GetMedicByPhone(phone string) (*schema.Medic, error)

	Directory
}

// TriageStore is an implementation of TriageCore
type TriageStore struct {
	ormDB *gorm.DB
}

func NewTriageStore(ormDB *gorm.DB) *TriageStore {
	return &TriageStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *TriageStore) Ping() error {
	return s.ormDB.DB().Ping()
}

func notFoundOr(err error) error {
	if gorm.IsRecordNotFoundError(err) {
		return ErrRecordNotFound
	}
	return err
}
