// controllers/tier.go
package controllers

import (
	"errors"
	"net/http"
	"sejenak-backend/config"
	"sejenak-backend/models"
	"sejenak-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateTierInput struct {
	Name                string  `json:"name" binding:"required"`
	Rank                int     `json:"rank" binding:"min=0"`
	UpgradeRequirement  float64 `json:"upgradeRequirement" binding:"min=0"`
	MaintainRequirement float64 `json:"maintainRequirement" binding:"min=0"`

	PointMultiplier float64 `json:"pointMultiplier"`
	CashbackPercent float64 `json:"cashbackPercent" binding:"min=0"`
	AutoReward      string  `json:"autoReward"`

	StampProgram    bool `json:"stampProgram"`
	DoubleStampDays bool `json:"doubleStampDays"`
	PriorityBooking bool `json:"priorityBooking"`

	FreeRewards models.StringList `json:"freeRewards"`
	Description string            `json:"description"`
}

type UpdateTierInput struct {
	Name                *string  `json:"name"`
	Rank                *int     `json:"rank" binding:"omitempty,min=0"`
	UpgradeRequirement  *float64 `json:"upgradeRequirement" binding:"omitempty,min=0"`
	MaintainRequirement *float64 `json:"maintainRequirement" binding:"omitempty,min=0"`

	PointMultiplier *float64 `json:"pointMultiplier"`
	CashbackPercent *float64 `json:"cashbackPercent" binding:"omitempty,min=0"`
	AutoReward      *string  `json:"autoReward"`

	StampProgram    *bool `json:"stampProgram"`
	DoubleStampDays *bool `json:"doubleStampDays"`
	PriorityBooking *bool `json:"priorityBooking"`

	FreeRewards *models.StringList `json:"freeRewards"`
	Description *string            `json:"description"`
}

// CreateTier creates a new tier definition
func CreateTier(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input CreateTierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Tier names are unique per branch
	var existing models.TierDefinition
	if err := config.DB.Where("branch_id = ? AND name = ?", branchUUID, input.Name).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Tier with this name already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	multiplier := input.PointMultiplier
	if multiplier <= 0 {
		multiplier = 1.0
	}

	tier := models.TierDefinition{
		BranchID:            branchUUID,
		Name:                input.Name,
		Rank:                input.Rank,
		UpgradeRequirement:  input.UpgradeRequirement,
		MaintainRequirement: input.MaintainRequirement,
		PointMultiplier:     multiplier,
		CashbackPercent:     input.CashbackPercent,
		AutoReward:          input.AutoReward,
		StampProgram:        input.StampProgram,
		DoubleStampDays:     input.DoubleStampDays,
		PriorityBooking:     input.PriorityBooking,
		FreeRewards:         input.FreeRewards,
		Description:         input.Description,
	}
	if tier.FreeRewards == nil {
		tier.FreeRewards = models.StringList{}
	}

	if err := config.DB.Create(&tier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tier")
		return
	}

	c.JSON(http.StatusCreated, tier)
}

// GetTiers retrieves all tier definitions ordered lowest to highest
func GetTiers(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var tiers []models.TierDefinition
	if err := config.DB.Where("branch_id = ?", branchUUID).
		Order("rank asc").Find(&tiers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tiers")
		return
	}

	c.JSON(http.StatusOK, tiers)
}

// UpdateTier updates an existing tier definition
func UpdateTier(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	tierUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateTierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var tier models.TierDefinition
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, tierUUID).
		First(&tier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tier not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil && *input.Name != tier.Name {
		var existing models.TierDefinition
		if err := config.DB.Where("branch_id = ? AND name = ?", branchUUID, *input.Name).
			First(&existing).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Tier with this name already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		tier.Name = *input.Name
	}
	if input.Rank != nil {
		tier.Rank = *input.Rank
	}
	if input.UpgradeRequirement != nil {
		tier.UpgradeRequirement = *input.UpgradeRequirement
	}
	if input.MaintainRequirement != nil {
		tier.MaintainRequirement = *input.MaintainRequirement
	}
	if input.PointMultiplier != nil && *input.PointMultiplier > 0 {
		tier.PointMultiplier = *input.PointMultiplier
	}
	if input.CashbackPercent != nil {
		tier.CashbackPercent = *input.CashbackPercent
	}
	if input.AutoReward != nil {
		tier.AutoReward = *input.AutoReward
	}
	if input.StampProgram != nil {
		tier.StampProgram = *input.StampProgram
	}
	if input.DoubleStampDays != nil {
		tier.DoubleStampDays = *input.DoubleStampDays
	}
	if input.PriorityBooking != nil {
		tier.PriorityBooking = *input.PriorityBooking
	}
	if input.FreeRewards != nil {
		tier.FreeRewards = *input.FreeRewards
	}
	if input.Description != nil {
		tier.Description = *input.Description
	}

	if err := config.DB.Save(&tier).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update tier")
		return
	}

	c.JSON(http.StatusOK, tier)
}

// DeleteTier deletes a tier definition
func DeleteTier(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	tierUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("branch_id = ? AND id = ?", branchUUID, tierUUID).
		Delete(&models.TierDefinition{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete tier")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Tier not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tier deleted successfully"})
}
