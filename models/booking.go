package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking statuses. Legacy rows imported from the old spreadsheet system
// may carry a nil BranchID.
const (
	BookingPending   = "pending"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

type Booking struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BranchID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedByUserID uuid.UUID  `gorm:"type:uuid;index;not null"`

	CustomerID  uuid.UUID `gorm:"type:uuid;index;not null"`
	TreatmentID uuid.UUID `gorm:"type:uuid;index;not null"`
	TherapistID uuid.UUID `gorm:"type:uuid;index;not null"`

	// Denormalized for reporting so historical rows keep their labels
	// after catalog edits.
	TreatmentName string `gorm:"not null"`
	Category      string `gorm:"default:'General'"`

	BookingDate time.Time `gorm:"index;not null"`
	Amount      float64   `gorm:"type:decimal(12,2);not null"`
	Status      string    `gorm:"type:varchar(20);default:'pending'"`
	Notes       string
}
