package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Points history entry types. The member's current balance must equal the
// sum of all entries since the last reset.
const (
	EntryEarned     = "earned"
	EntryRedeemed   = "redeemed"
	EntryAdjustment = "adjustment"
)

type PointsHistoryEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	MemberID uuid.UUID `gorm:"type:uuid;index;not null"`
	Delta    int       `gorm:"not null"` // signed
	Type     string    `gorm:"type:varchar(15);not null"`
	Note     string

	// Set on earned entries so a booking cannot be credited twice.
	BookingID *uuid.UUID `gorm:"type:uuid;index"`

	// Earned batches lapse after this horizon; the monthly sweep writes a
	// compensating adjustment for whatever remains and marks the batch.
	ExpiresAt *time.Time `gorm:"index"`
	Lapsed    bool       `gorm:"default:false"`

	RecordedAt time.Time `gorm:"index;default:CURRENT_TIMESTAMP"`
}

func (e *PointsHistoryEntry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
