package schema

import (
	"time"

	"github.com/google/uuid"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleMedic   = "medic"
)

type Patient struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone" gorm:"unique_index;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Consent      bool      `json:"consent"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
