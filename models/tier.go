package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TierDefinition is the benefit bundle attached to a tier name. Tiers form a
// strict order by threshold; Rank 0 is the lowest. MaintainRequirement only
// applies to the highest tier, UpgradeRequirement to all others.
type TierDefinition struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name string `gorm:"not null;uniqueIndex:idx_branch_tier,priority:2"`
	Rank int    `gorm:"not null"`

	UpgradeRequirement  float64 `gorm:"type:decimal(12,2);default:0.0"`
	MaintainRequirement float64 `gorm:"type:decimal(12,2);default:0.0"`

	PointMultiplier float64 `gorm:"default:1.0"`
	CashbackPercent float64 `gorm:"default:0.0"`
	AutoReward      string  `gorm:"default:''"`

	StampProgram    bool `gorm:"default:false"`
	DoubleStampDays bool `gorm:"default:false"`
	PriorityBooking bool `gorm:"default:false"`

	FreeRewards StringList `gorm:"type:jsonb;default:'[]'"`
	Description string     `gorm:"type:text"`

	gorm.Model
}

func (t *TierDefinition) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
