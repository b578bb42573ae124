package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BranchID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Phone       string `gorm:"not null;uniqueIndex:idx_branch_phone,priority:2"`
	Email       string
	Birthday    *time.Time
	Notes       string
	TotalVisits int     `gorm:"default:0"`
	TotalSpent  float64 `gorm:"type:decimal(12,2);default:0.0"`
	LastVisit   *time.Time
	IsActive    bool `gorm:"default:true"`

	// Legacy flat preference map; NotificationSettings overrides it per key.
	Preferences          JSONB `gorm:"type:jsonb;default:'{}'"`
	NotificationSettings JSONB `gorm:"type:jsonb;default:'{}'"`

	Bookings []Booking `gorm:"foreignKey:CustomerID"`

	gorm.Model
}
