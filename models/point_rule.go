package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Point rule scopes. Exactly one scope discriminator is meaningful per rule:
// a category rule names one category, a treatment rule one-or-more treatment
// ids, a day rule one-or-more weekdays (0 = Sunday).
const (
	RuleScopeGeneral   = "general"
	RuleScopeCategory  = "category"
	RuleScopeTreatment = "treatment"
	RuleScopeDay       = "day"
)

type PointRule struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string  `gorm:"not null"`
	Scope        string  `gorm:"type:varchar(20);default:'general'"`
	SpendAmount  float64 `gorm:"type:decimal(12,2);not null"` // qualifying spend unit
	PointEarned  int     `gorm:"not null"`
	ExpiryMonths int     `gorm:"default:12"`
	WelcomePoint int     `gorm:"default:0"`
	IsActive     bool    `gorm:"default:true"`

	Category     string     `gorm:"default:''"`
	TreatmentIDs StringList `gorm:"type:jsonb;default:'[]'"`
	Weekdays     IntList    `gorm:"type:jsonb;default:'[]'"`

	gorm.Model
}

func (r *PointRule) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
