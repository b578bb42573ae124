// models/campaign_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampaignLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	BranchID uuid.UUID `gorm:"type:uuid;index;not null"`

	Subject      string `gorm:"not null"`
	Channel      string `gorm:"type:varchar(20)"` // email, sms, whatsapp
	Recipients   int    `gorm:"default:0"`
	Skipped      int    `gorm:"default:0"` // suppressed by preferences
	Status       string `gorm:"type:varchar(20)"` // sent, partial, failed
	ErrorMessage string `gorm:"type:text"`
	SentAt       time.Time

	gorm.Model
}

func (l *CampaignLog) BeforeCreate(tx *gorm.DB) (err error) {
	l.ID = uuid.New()
	return
}
