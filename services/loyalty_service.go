// services/loyalty_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sejenak-backend/loyalty"
	"sejenak-backend/models"
)

// LoyaltyService applies the pure loyalty engine against storage: earning
// from completed bookings, redeeming rewards, and the administrative reset.
type LoyaltyService struct {
	db *gorm.DB
}

func NewLoyaltyService(db *gorm.DB) *LoyaltyService {
	return &LoyaltyService{db: db}
}

// EarnResult reports the outcome of crediting one booking.
type EarnResult struct {
	MemberID     uuid.UUID `json:"memberId"`
	Points       int       `json:"points"`
	WelcomeBonus int       `json:"welcomeBonus"`
	NewBalance   int       `json:"newBalance"`
	Tier         string    `json:"tier"`
}

// RecordEarn credits a completed booking to the customer's member record.
// The member is created on the first qualifying transaction. Rule points,
// scaled by the member's tier multiplier, and any welcome bonus land as
// history entries inside one transaction, then the tier is reclassified.
func (s *LoyaltyService) RecordEarn(branchID, bookingID uuid.UUID) (*EarnResult, error) {
	var booking models.Booking
	if err := s.db.Where("id = ? AND (branch_id = ? OR branch_id IS NULL)", bookingID, branchID).
		First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: load booking: %v", ErrDataUnavailable, err)
	}
	if booking.Status != models.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	var rules []models.PointRule
	if err := s.db.Where("branch_id = ?", branchID).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("%w: load rules: %v", ErrDataUnavailable, err)
	}
	var tiers []models.TierDefinition
	if err := s.db.Where("branch_id = ?", branchID).Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("%w: load tiers: %v", ErrDataUnavailable, err)
	}

	result := &EarnResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		member, created, err := s.findOrCreateMember(tx, branchID, booking.CustomerID)
		if err != nil {
			return err
		}

		// Refuse double-crediting the same booking.
		var credited int64
		if err := tx.Model(&models.PointsHistoryEntry{}).
			Where("booking_id = ? AND type = ?", booking.ID, models.EntryEarned).
			Count(&credited).Error; err != nil {
			return err
		}
		if credited > 0 {
			return ErrAlreadyEarned
		}

		event := loyalty.SpendEvent{
			Amount:           booking.Amount,
			Timestamp:        booking.BookingDate,
			Category:         booking.Category,
			TreatmentID:      booking.TreatmentID.String(),
			FirstTransaction: created,
		}
		award, err := loyalty.EvaluatePoints(event, rules)
		if err != nil {
			return err
		}

		multiplier := 1.0
		if tier, terr := loyalty.ClassifyTier(s.rollingSpend(tx, member, booking), tiers); terr == nil && tier.PointMultiplier > 0 {
			multiplier = tier.PointMultiplier
		}

		earned := 0
		for _, batch := range award.Batches {
			points := int(float64(batch.Points) * multiplier)
			entry := models.PointsHistoryEntry{
				BranchID:   branchID,
				MemberID:   member.ID,
				Delta:      points,
				Type:       models.EntryEarned,
				Note:       batch.RuleName,
				BookingID:  &booking.ID,
				ExpiresAt:  batch.ExpiresAt,
				RecordedAt: time.Now(),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			earned += points
		}
		if award.WelcomeBonus > 0 {
			entry := models.PointsHistoryEntry{
				BranchID:   branchID,
				MemberID:   member.ID,
				Delta:      award.WelcomeBonus,
				Type:       models.EntryEarned,
				Note:       "Welcome bonus",
				BookingID:  &booking.ID,
				RecordedAt: time.Now(),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
			earned += award.WelcomeBonus
		}

		member.CurrentPoints += earned
		member.LifetimePoints += earned
		if tier, terr := loyalty.ClassifyTier(s.rollingSpend(tx, member, booking), tiers); terr == nil {
			member.Tier = tier.Name
		}
		if err := tx.Save(member).Error; err != nil {
			return err
		}

		result.MemberID = member.ID
		result.Points = earned - award.WelcomeBonus
		result.WelcomeBonus = award.WelcomeBonus
		result.NewBalance = member.CurrentPoints
		result.Tier = member.Tier
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *LoyaltyService) findOrCreateMember(tx *gorm.DB, branchID, customerID uuid.UUID) (*models.Member, bool, error) {
	var member models.Member
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ?", customerID).First(&member).Error
	if err == nil {
		return &member, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	member = models.Member{
		ID:         uuid.New(),
		BranchID:   branchID,
		CustomerID: customerID,
		EnrolledAt: time.Now(),
	}
	if err := tx.Create(&member).Error; err != nil {
		return nil, false, err
	}
	return &member, true, nil
}

// rollingSpend sums the member's completed-booking spend over the trailing
// twelve months, the figure tier thresholds are measured against.
func (s *LoyaltyService) rollingSpend(tx *gorm.DB, member *models.Member, current models.Booking) float64 {
	var spend float64
	since := time.Now().AddDate(-1, 0, 0)
	err := tx.Model(&models.Booking{}).
		Where("customer_id = ? AND status = ? AND booking_date >= ?", member.CustomerID, models.BookingCompleted, since).
		Select("COALESCE(SUM(amount), 0)").Scan(&spend).Error
	if err != nil {
		log.Warn().Err(err).Str("member", member.ID.String()).Msg("rolling spend query failed, using current booking only")
		return current.Amount
	}
	return spend
}

// Redeem gates and applies one reward claim. The reward and member rows are
// locked for the duration of the transaction and the usage increment is
// guarded by the quota, so two simultaneous claims cannot overrun it. The
// redemption record and the negative history entry land atomically with the
// balance update.
func (s *LoyaltyService) Redeem(branchID, memberID, rewardID uuid.UUID) (loyalty.RedemptionDecision, error) {
	var decision loyalty.RedemptionDecision
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND branch_id = ?", memberID, branchID).First(&member).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMemberNotFound
			}
			return fmt.Errorf("%w: load member: %v", ErrDataUnavailable, err)
		}

		var reward models.Reward
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND branch_id = ?", rewardID, branchID).First(&reward).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRewardNotFound
			}
			return fmt.Errorf("%w: load reward: %v", ErrDataUnavailable, err)
		}

		balance := member.CurrentPoints
		if reward.Method == models.RedeemByStamps {
			balance = member.Stamps
		}
		decision = loyalty.ValidateRedemption(balance, reward)
		if !decision.Allowed {
			return nil
		}

		// Conditional increment: a no-op here means another claim won the
		// quota race after our validation read.
		res := tx.Model(&models.Reward{}).
			Where("id = ? AND (quota IS NULL OR usage_count < quota)", reward.ID).
			Update("usage_count", gorm.Expr("usage_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			decision = loyalty.RedemptionDecision{Reason: loyalty.ReasonQuotaExhausted}
			return nil
		}

		if reward.Method == models.RedeemByStamps {
			member.Stamps = decision.NewBalance
		} else {
			member.CurrentPoints = decision.NewBalance
		}
		if err := tx.Save(&member).Error; err != nil {
			return err
		}

		record := models.RedemptionRecord{
			BranchID:   branchID,
			MemberID:   member.ID,
			RewardID:   reward.ID,
			RewardName: reward.Name,
			Cost:       reward.Cost,
			Method:     reward.Method,
			RedeemedAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		if reward.Method == models.RedeemByPoints {
			entry := models.PointsHistoryEntry{
				BranchID:   branchID,
				MemberID:   member.ID,
				Delta:      -reward.Cost,
				Type:       models.EntryRedeemed,
				Note:       reward.Name,
				RecordedAt: time.Now(),
			}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return loyalty.RedemptionDecision{}, err
	}
	return decision, nil
}

// ResetProgram wipes the loyalty program's dynamic state for a branch in a
// single transaction: history and redemption logs purged, point rules
// deleted, every member zeroed back to the lowest tier. There is no undo.
func (s *LoyaltyService) ResetProgram(branchID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		lowest := ""
		var tiers []models.TierDefinition
		if err := tx.Where("branch_id = ?", branchID).Order("rank asc").Find(&tiers).Error; err != nil {
			return fmt.Errorf("%w: load tiers: %v", ErrDataUnavailable, err)
		}
		if len(tiers) > 0 {
			lowest = tiers[0].Name
		}

		if err := tx.Where("branch_id = ?", branchID).
			Delete(&models.PointsHistoryEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("branch_id = ?", branchID).
			Delete(&models.RedemptionRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("branch_id = ?", branchID).
			Delete(&models.PointRule{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Member{}).Where("branch_id = ?", branchID).
			Updates(map[string]interface{}{
				"current_points":  0,
				"lifetime_points": 0,
				"stamps":          0,
				"tier":            lowest,
			}).Error
	})
}
