package models

import (
	"github.com/google/uuid"
)

type Branch struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Name    string    `gorm:"not null"`
	Address string

	Users      []User      `gorm:"foreignKey:BranchID"`
	Customers  []Customer  `gorm:"foreignKey:BranchID"`
	Treatments []Treatment `gorm:"foreignKey:BranchID"`
	Therapists []Therapist `gorm:"foreignKey:BranchID"`
}
