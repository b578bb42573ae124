// controllers/campaign.go
package controllers

import (
	"net/http"
	"sejenak-backend/config"
	"sejenak-backend/models"
	"sejenak-backend/utils"

	"github.com/gin-gonic/gin"
)

// BlastInput defines the expected JSON structure for a promotional blast
type BlastInput struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"` // HTML for email, plain text for sms
	Channel string `json:"channel" binding:"omitempty,oneof=email sms"`
}

// SendCampaignBlast delivers a promotional blast to every contactable
// customer of the branch. Customers who switched promotions off in their
// communication preferences are skipped.
func SendCampaignBlast(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input BlastInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	channel := input.Channel
	if channel == "" {
		channel = "email"
	}

	var result interface{}
	var err error
	if channel == "email" {
		result, err = campaignSvc.SendEmailBlast(branchUUID, input.Subject, input.Body)
	} else {
		result, err = campaignSvc.SendSMSBlast(branchUUID, input.Subject, input.Body)
	}
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send campaign")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCampaignLogs retrieves past blasts for the branch
func GetCampaignLogs(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var logs []models.CampaignLog
	if err := config.DB.Where("branch_id = ?", branchUUID).
		Order("sent_at desc").Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve campaign logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
