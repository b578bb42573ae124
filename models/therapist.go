package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Therapist struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name      string `gorm:"not null"`
	Phone     string
	Specialty string
	IsActive  bool `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:TherapistID"`

	gorm.Model
}
