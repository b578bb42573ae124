package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is the loyalty-program state attached to a customer. Current
// balance never goes below zero; lifetime points only move backwards on an
// explicit program reset.
type Member struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BranchID   uuid.UUID `gorm:"type:uuid;index;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	CurrentPoints  int    `gorm:"default:0"`
	LifetimePoints int    `gorm:"default:0"`
	Stamps         int    `gorm:"default:0"`
	Tier           string `gorm:"type:varchar(30);default:''"`

	EnrolledAt time.Time `gorm:"default:CURRENT_TIMESTAMP"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
