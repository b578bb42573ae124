package controllers

import (
	"net/http"
	"sejenak-backend/config"
	"sejenak-backend/services"
	"sejenak-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	loyaltySvc  *services.LoyaltyService
	reportSvc   *services.ReportService
	campaignSvc *services.CampaignService
)

// InitServices wires the service layer. Called once from main after the
// database connection is up.
func InitServices(cfg config.Config) {
	loyaltySvc = services.NewLoyaltyService(config.DB)
	reportSvc = services.NewReportService(config.DB)
	campaignSvc = services.NewCampaignService(config.DB, cfg)
}

// getBranchID pulls the authenticated branch out of the request context.
// Writes the error response itself when the claim is missing or malformed.
func getBranchID(c *gin.Context) (uuid.UUID, bool) {
	branchID, exists := c.Get("branchId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Branch ID not found in context")
		return uuid.Nil, false
	}
	branchUUID, err := uuid.Parse(branchID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid branch ID format")
		return uuid.Nil, false
	}
	return branchUUID, true
}

func getUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// parseIDParam parses a :id path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
