// controllers/therapist.go
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

type CreateTherapistInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Specialty string `json:"specialty"`
}

type UpdateTherapistInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Specialty *string `json:"specialty"`
	IsActive  *bool   `json:"isActive"`
}

// GetTherapists retrieves all therapists for the branch
func GetTherapists(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var therapists []models.Therapist
	if err := config.DB.Where("branch_id = ?", branchUUID).Find(&therapists).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve therapists")
		return
	}

	c.JSON(http.StatusOK, therapists)
}

// AddTherapist creates a new therapist for the branch
func AddTherapist(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input CreateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	therapist := models.Therapist{
		BranchID:  branchUUID,
		Name:      input.Name,
		Phone:     input.Phone,
		Specialty: input.Specialty,
		IsActive:  true,
	}

	if err := config.DB.Create(&therapist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create therapist")
		return
	}

	c.JSON(http.StatusCreated, therapist)
}

// UpdateTherapist updates an existing therapist
func UpdateTherapist(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	therapistUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateTherapistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var therapist models.Therapist
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, therapistUUID).
		First(&therapist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		therapist.Name = *input.Name
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		therapist.Phone = *input.Phone
	}
	if input.Specialty != nil {
		therapist.Specialty = *input.Specialty
	}
	if input.IsActive != nil {
		therapist.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&therapist).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update therapist")
		return
	}

	c.JSON(http.StatusOK, therapist)
}

// DeleteTherapist soft deletes a therapist
func DeleteTherapist(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	therapistUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("branch_id = ? AND id = ?", branchUUID, therapistUUID).
		Delete(&models.Therapist{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete therapist")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Therapist not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Therapist deleted successfully"})
}
