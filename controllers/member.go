// controllers/member.go
package controllers

import (
	"errors"
	"net/http"
	"sejenak-backend/config"
	"sejenak-backend/loyalty"
	"sejenak-backend/models"
	"sejenak-backend/services"
	"sejenak-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// GetMembers retrieves all loyalty members for the branch
func GetMembers(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var members []models.Member
	if err := config.DB.Preload("Customer").Where("branch_id = ?", branchUUID).
		Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember retrieves a specific member by ID
func GetMember(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	memberUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var member models.Member
	if err := config.DB.Preload("Customer").
		Where("branch_id = ? AND id = ?", branchUUID, memberUUID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetMemberLedger returns a member's points history together with a
// consistency check of the stored balance against the ledger sum. A
// mismatch is logged as a warning and reported, not treated as an error.
func GetMemberLedger(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	memberUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var member models.Member
	if err := config.DB.Where("branch_id = ? AND id = ?", branchUUID, memberUUID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var entries []models.PointsHistoryEntry
	if err := config.DB.Where("member_id = ?", memberUUID).
		Order("recorded_at asc").Find(&entries).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}

	sum, consistent := loyalty.CheckLedger(member, entries)
	if !consistent {
		log.Warn().
			Str("member", member.ID.String()).
			Int("balance", member.CurrentPoints).
			Int("ledgerSum", sum).
			Msg("Member balance disagrees with history sum")
	}

	c.JSON(http.StatusOK, gin.H{
		"member":     member,
		"entries":    entries,
		"ledgerSum":  sum,
		"consistent": consistent,
	})
}

// EarnInput names the completed booking to credit
type EarnInput struct {
	BookingID uuid.UUID `json:"bookingId" binding:"required"`
}

// EarnPoints credits a completed booking to the member program. The member
// record is created on the customer's first qualifying transaction.
func EarnPoints(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input EarnInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	result, err := loyaltySvc.RecordEarn(branchUUID, input.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, services.ErrBookingNotCompleted):
			utils.RespondWithError(c, http.StatusBadRequest, "Booking is not completed")
		case errors.Is(err, services.ErrAlreadyEarned):
			utils.RespondWithError(c, http.StatusConflict, "Points already earned for this booking")
		case errors.Is(err, loyalty.ErrInvalidSpend):
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid spend event")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record points")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// RedeemInput names the reward to claim
type RedeemInput struct {
	RewardID uuid.UUID `json:"rewardId" binding:"required"`
}

// RedeemReward gates and applies a reward claim for the member. Business
// rejections come back as 422 with the reason; they are expected outcomes,
// not server errors.
func RedeemReward(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}
	memberUUID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input RedeemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	decision, err := loyaltySvc.Redeem(branchUUID, memberUUID, input.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		case errors.Is(err, services.ErrRewardNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Reward not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to redeem reward")
		}
		return
	}

	if !decision.Allowed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"allowed": false,
			"reason":  decision.Reason,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"allowed":    true,
		"newBalance": decision.NewBalance,
	})
}

// ResetInput requires the operator to type the confirmation phrase
type ResetInput struct {
	Confirmation string `json:"confirmation" binding:"required"`
}

// ResetLoyaltyProgram wipes the program's dynamic state for the branch:
// balances and tiers zeroed, history and redemption logs purged, point
// rules deleted. All four mutations run in one transaction; there is no
// undo.
func ResetLoyaltyProgram(c *gin.Context) {
	branchUUID, ok := getBranchID(c)
	if !ok {
		return
	}

	var input ResetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Confirmation != "RESET LOYALTY PROGRAM" {
		utils.RespondWithError(c, http.StatusBadRequest, "Confirmation phrase does not match")
		return
	}

	if err := loyaltySvc.ResetProgram(branchUUID); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to reset loyalty program")
		return
	}

	log.Info().Str("branch", branchUUID.String()).Msg("Loyalty program reset")
	c.JSON(http.StatusOK, gin.H{"message": "Loyalty program reset successfully"})
}
