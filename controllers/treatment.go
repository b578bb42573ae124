// controllers/treatment.go
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

// CreateTreatmentInput defines the expected JSON structure for creating a treatment
type CreateTreatmentInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Duration    int     `json:"duration" binding:"min=0"` // in minutes
	Category    string  `json:"category"`
}

// UpdateTreatmentInput defines the expected JSON structure for updating a treatment
type UpdateTreatmentInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

// CreateTreatment creates a new treatment for the branch
func CreateTreatment(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input CreateTreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	treatment := models.Treatment{
		BranchID:    branchUUID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Duration:    input.Duration,
		Category:    input.Category,
		IsActive:    true,
	}

	if err := config.DB.Create(&treatment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create treatment")
		return
	}

	c.JSON(http.StatusCreated, treatment)
}

// GetTreatments retrieves all treatments for the branch
func GetTreatments(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var treatments []models.Treatment
	if err := config.DB.Where("branch_id = ?", branchUUID).Find(&treatments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve treatments")
		return
	}

	c.JSON(http.StatusOK, treatments)
}

// GetTreatment retrieves a specific treatment by ID
func GetTreatment(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	treatmentUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var treatment models.Treatment
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, treatmentUUID).
		First(&treatment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Treatment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, treatment)
}

// UpdateTreatment updates an existing treatment
func UpdateTreatment(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	treatmentUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateTreatmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var treatment models.Treatment
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, treatmentUUID).
		First(&treatment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Treatment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		treatment.Name = *input.Name
	}
	if input.Description != nil {
		treatment.Description = *input.Description
	}
	if input.Price != nil {
		treatment.Price = *input.Price
	}
	if input.Duration != nil {
		treatment.Duration = *input.Duration
	}
	if input.Category != nil {
		treatment.Category = *input.Category
	}
	if input.IsActive != nil {
		treatment.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&treatment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update treatment")
		return
	}

	c.JSON(http.StatusOK, treatment)
}

// DeleteTreatment deletes a treatment
func DeleteTreatment(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	treatmentUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("branch_id = ? AND id = ?", branchUUID, treatmentUUID).
		Delete(&models.Treatment{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete treatment")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Treatment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Treatment deleted successfully"})
}
