// controllers/point_rule.go
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

// CreatePointRuleInput defines the expected JSON structure
type CreatePointRuleInput struct {
	Name         string  `json:"name" binding:"required"`
	Scope        string  `json:"scope" binding:"required,oneof=general category treatment day"`
	SpendAmount  float64 `json:"spendAmount" binding:"required,gt=0"`
	PointEarned  int     `json:"pointEarned" binding:"required,min=1"`
	ExpiryMonths int     `json:"expiryMonths" binding:"min=0"`
	WelcomePoint int     `json:"welcomePoint" binding:"min=0"`

	Category     string            `json:"category"`
	TreatmentIDs models.StringList `json:"treatmentIds"`
	Weekdays     models.IntList    `json:"weekdays"`
}

// UpdatePointRuleInput defines the expected JSON structure
type UpdatePointRuleInput struct {
	Name         *string  `json:"name"`
	SpendAmount  *float64 `json:"spendAmount" binding:"omitempty,gt=0"`
	PointEarned  *int     `json:"pointEarned" binding:"omitempty,min=1"`
	ExpiryMonths *int     `json:"expiryMonths" binding:"omitempty,min=0"`
	WelcomePoint *int     `json:"welcomePoint" binding:"omitempty,min=0"`
	IsActive     *bool    `json:"isActive"`

	Category     *string            `json:"category"`
	TreatmentIDs *models.StringList `json:"treatmentIds"`
	Weekdays     *models.IntList    `json:"weekdays"`
}

// validateRuleScope enforces that exactly the scope's own discriminator is
// populated: a category rule names one category, a treatment rule at least
// one treatment id, a day rule at least one weekday.
func validateRuleScope(scope, category string, treatmentIDs models.StringList, weekdays models.IntList) string {
	switch scope {
	case models.RuleScopeCategory:
		if category == "" {
			return "A category rule must name a category"
		}
	case models.RuleScopeTreatment:
		if len(treatmentIDs) == 0 {
			return "A treatment rule must name at least one treatment"
		}
	case models.RuleScopeDay:
		if len(weekdays) == 0 {
			return "A day rule must name at least one weekday"
		}
		for _, d := range weekdays {
			if d < 0 || d > 6 {
				return "Weekdays must be between 0 (Sunday) and 6 (Saturday)"
			}
		}
	}
	return ""
}

// CreatePointRule creates a new point-earning rule
func CreatePointRule(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input CreatePointRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if msg := validateRuleScope(input.Scope, input.Category, input.TreatmentIDs, input.Weekdays); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	rule := models.PointRule{
		BranchID:     branchUUID,
		Name:         input.Name,
		Scope:        input.Scope,
		SpendAmount:  input.SpendAmount,
		PointEarned:  input.PointEarned,
		ExpiryMonths: input.ExpiryMonths,
		WelcomePoint: input.WelcomePoint,
		IsActive:     true,
		Category:     input.Category,
		TreatmentIDs: input.TreatmentIDs,
		Weekdays:     input.Weekdays,
	}
	if rule.TreatmentIDs == nil {
		rule.TreatmentIDs = models.StringList{}
	}
	if rule.Weekdays == nil {
		rule.Weekdays = models.IntList{}
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create rule")
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetPointRules retrieves all point rules for the branch
func GetPointRules(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var rules []models.PointRule
	if err := config.DB.Where("branch_id = ?", branchUUID).Find(&rules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve rules")
		return
	}

	c.JSON(http.StatusOK, rules)
}

// UpdatePointRule updates an existing rule. The scope itself is immutable;
// delete and recreate to change it.
func UpdatePointRule(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	ruleUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdatePointRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var rule models.PointRule
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, ruleUUID).
		First(&rule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Rule not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		rule.Name = *input.Name
	}
	if input.SpendAmount != nil {
		rule.SpendAmount = *input.SpendAmount
	}
	if input.PointEarned != nil {
		rule.PointEarned = *input.PointEarned
	}
	if input.ExpiryMonths != nil {
		rule.ExpiryMonths = *input.ExpiryMonths
	}
	if input.WelcomePoint != nil {
		rule.WelcomePoint = *input.WelcomePoint
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if input.Category != nil {
		rule.Category = *input.Category
	}
	if input.TreatmentIDs != nil {
		rule.TreatmentIDs = *input.TreatmentIDs
	}
	if input.Weekdays != nil {
		rule.Weekdays = *input.Weekdays
	}

	if msg := validateRuleScope(rule.Scope, rule.Category, rule.TreatmentIDs, rule.Weekdays); msg != "" {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update rule")
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeletePointRule deletes a rule
func DeletePointRule(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	ruleUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result := config.DB.Where("branch_id = ? AND id = ?", branchUUID, ruleUUID).
		Delete(&models.PointRule{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete rule")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Rule not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rule deleted successfully"})
}
