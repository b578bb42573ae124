package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RedemptionRecord is an append-only log of one reward claim by one member.
// Rows are only ever deleted by a full program reset.
type RedemptionRecord struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	MemberID uuid.UUID `gorm:"type:uuid;index;not null"`
	RewardID uuid.UUID `gorm:"type:uuid;index;not null"`

	RewardName string `gorm:"not null"`
	Cost       int    `gorm:"not null"`
	Method     string `gorm:"type:varchar(10);not null"`

	RedeemedAt time.Time `gorm:"index;default:CURRENT_TIMESTAMP"`
}

func (r *RedemptionRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
