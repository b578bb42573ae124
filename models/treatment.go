package models

import (
	"github.com/google/uuid"
)

type Treatment struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BranchID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	Description string
	Price       float64 `gorm:"type:decimal(12,2);not null"`
	Duration    int     // in minutes
	Category    string  `gorm:"default:'General'"`
	IsActive    bool    `gorm:"default:true"`

	Bookings []Booking `gorm:"foreignKey:TreatmentID"`
}
