package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reward redemption methods and statuses.
const (
	RedeemByPoints = "points"
	RedeemByStamps = "stamps"

	RewardActive  = "active"
	RewardExpired = "expired"
)

type Reward struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string `gorm:"not null"`
	Method       string `gorm:"type:varchar(10);default:'points'"`
	Cost         int    `gorm:"not null"`
	ClaimType    string `gorm:"default:''"`
	ExpiryMonths int    `gorm:"default:0"` // 0 means no claim expiry

	MinPoint   int  `gorm:"default:0"`
	Quota      *int // nil means unlimited
	UsageCount int  `gorm:"default:0"`

	Status   string `gorm:"type:varchar(10);default:'active'"`
	Category string `gorm:"default:''"`
	ImageURL string

	gorm.Model
}

func (r *Reward) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
