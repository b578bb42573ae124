// controllers/reward.go
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

type CreateRewardInput struct {
	Name         string `json:"name" binding:"required"`
	Method       string `json:"method" binding:"omitempty,oneof=points stamps"`
	Cost         int    `json:"cost" binding:"required,min=1"`
	ClaimType    string `json:"claimType"`
	ExpiryMonths int    `json:"expiryMonths" binding:"min=0"`
	MinPoint     int    `json:"minPoint" binding:"min=0"`
	Quota        *int   `json:"quota" binding:"omitempty,min=1"`
	Category     string `json:"category"`
	ImageURL     string `json:"imageUrl"`
}

type UpdateRewardInput struct {
	Name         *string `json:"name"`
	Cost         *int    `json:"cost" binding:"omitempty,min=1"`
	ClaimType    *string `json:"claimType"`
	ExpiryMonths *int    `json:"expiryMonths" binding:"omitempty,min=0"`
	MinPoint     *int    `json:"minPoint" binding:"omitempty,min=0"`
	Quota        *int    `json:"quota" binding:"omitempty,min=1"`
	Status       *string `json:"status" binding:"omitempty,oneof=active expired"`
	Category     *string `json:"category"`
	ImageURL     *string `json:"imageUrl"`
}

// CreateReward creates a new redeemable reward
func CreateReward(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input CreateRewardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	method := input.Method
	if method == "" {
		method = models.RedeemByPoints
	}

	reward := models.Reward{
		BranchID:     branchUUID,
		Name:         input.Name,
		Method:       method,
		Cost:         input.Cost,
		ClaimType:    input.ClaimType,
		ExpiryMonths: input.ExpiryMonths,
		MinPoint:     input.MinPoint,
		Quota:        input.Quota,
		Status:       models.RewardActive,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
	}

	if err := config.DB.Create(&reward).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reward")
		return
	}

	c.JSON(http.StatusCreated, reward)
}

// GetRewards retrieves all rewards for the branch
func GetRewards(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	query := config.DB.Where("branch_id = ?", branchUUID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var rewards []models.Reward
	if err := query.Find(&rewards).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve rewards")
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// UpdateReward updates an existing reward. The quota can only grow and never
// below the current usage count; the usage count itself is never edited here.
func UpdateReward(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	rewardUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateRewardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var reward models.Reward
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, rewardUUID).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reward not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		reward.Name = *input.Name
	}
	if input.Cost != nil {
		reward.Cost = *input.Cost
	}
	if input.ClaimType != nil {
		reward.ClaimType = *input.ClaimType
	}
	if input.ExpiryMonths != nil {
		reward.ExpiryMonths = *input.ExpiryMonths
	}
	if input.MinPoint != nil {
		reward.MinPoint = *input.MinPoint
	}
	if input.Quota != nil {
		if *input.Quota < reward.UsageCount {
			utils.RespondWithError(c, http.StatusBadRequest, "Quota cannot be below the current usage count")
			return
		}
		reward.Quota = input.Quota
	}
	if input.Status != nil {
		reward.Status = *input.Status
	}
	if input.Category != nil {
		reward.Category = *input.Category
	}
	if input.ImageURL != nil {
		reward.ImageURL = *input.ImageURL
	}

	if err := config.DB.Save(&reward).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reward")
		return
	}

	c.JSON(http.StatusOK, reward)
}

// DeleteReward deletes a reward
func DeleteReward(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	rewardUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("branch_id = ? AND id = ?", branchUUID, rewardUUID).
		Delete(&models.Reward{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reward")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reward not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reward deleted successfully"})
}
