// services/tier_service.go
package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"sejenak-backend/loyalty"
	"sejenak-backend/models"
)

// TierService runs the scheduled loyalty maintenance: nightly tier
// reclassification over rolling spend and the monthly expired-points sweep.
type TierService struct {
	db *gorm.DB
}

func NewTierService(db *gorm.DB) *TierService {
	return &TierService{db: db}
}

func (s *TierService) StartScheduler() {
	c := cron.New()

	// Nightly at 2 AM: reclassify every member
	c.AddFunc("0 2 * * *", s.ReclassifyAll)

	// First of every month at 3 AM: lapse expired point batches
	c.AddFunc("0 3 1 * *", s.ExpirePoints)

	c.Start()
	log.Info().Msg("Loyalty scheduler started")
}

// ReclassifyAll recomputes every member's tier from their trailing
// twelve-month completed-booking spend. Demotion happens here when a member
// no longer meets the maintain threshold.
func (s *TierService) ReclassifyAll() {
	log.Info().Msg("Starting tier reclassification...")

	var members []models.Member
	if err := s.db.Find(&members).Error; err != nil {
		log.Error().Err(err).Msg("Failed to fetch members")
		return
	}

	tiersByBranch := map[string][]models.TierDefinition{}
	since := time.Now().AddDate(-1, 0, 0)

	for i := range members {
		member := &members[i]
		key := member.BranchID.String()
		tiers, ok := tiersByBranch[key]
		if !ok {
			if err := s.db.Where("branch_id = ?", member.BranchID).Find(&tiers).Error; err != nil {
				log.Error().Err(err).Str("branch", key).Msg("Failed to fetch tiers")
				continue
			}
			tiersByBranch[key] = tiers
		}

		var spend float64
		err := s.db.Model(&models.Booking{}).
			Where("customer_id = ? AND status = ? AND booking_date >= ?",
				member.CustomerID, models.BookingCompleted, since).
			Select("COALESCE(SUM(amount), 0)").Scan(&spend).Error
		if err != nil {
			log.Error().Err(err).Str("member", member.ID.String()).Msg("Failed to sum spend")
			continue
		}

		tier, err := loyalty.ClassifyTier(spend, tiers)
		if err != nil {
			continue
		}
		if tier.Name == member.Tier {
			continue
		}
		if err := s.db.Model(member).Update("tier", tier.Name).Error; err != nil {
			log.Error().Err(err).Str("member", member.ID.String()).Msg("Failed to update tier")
		}
	}

	log.Info().Msg("Tier reclassification completed")
}

// ExpirePoints lapses earned batches past their expiry horizon. Each lapsed
// batch gets a compensating negative adjustment entry, capped so the balance
// never goes below zero, and is marked so it is swept only once.
func (s *TierService) ExpirePoints() {
	log.Info().Msg("Starting expired points sweep...")

	var entries []models.PointsHistoryEntry
	err := s.db.Where("type = ? AND lapsed = false AND expires_at IS NOT NULL AND expires_at < ?",
		models.EntryEarned, time.Now()).
		Order("recorded_at asc").Find(&entries).Error
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch expirable entries")
		return
	}

	for _, entry := range entries {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var member models.Member
			if err := tx.First(&member, "id = ?", entry.MemberID).Error; err != nil {
				return err
			}

			lapse := entry.Delta
			if lapse > member.CurrentPoints {
				lapse = member.CurrentPoints
			}
			if lapse > 0 {
				adjustment := models.PointsHistoryEntry{
					BranchID:   entry.BranchID,
					MemberID:   entry.MemberID,
					Delta:      -lapse,
					Type:       models.EntryAdjustment,
					Note:       "Points expired",
					RecordedAt: time.Now(),
				}
				if err := tx.Create(&adjustment).Error; err != nil {
					return err
				}
				if err := tx.Model(&member).
					Update("current_points", member.CurrentPoints-lapse).Error; err != nil {
					return err
				}
			}
			return tx.Model(&models.PointsHistoryEntry{}).
				Where("id = ?", entry.ID).Update("lapsed", true).Error
		})
		if err != nil {
			log.Error().Err(err).Str("entry", entry.ID.String()).Msg("Failed to lapse batch")
		}
	}

	log.Info().Msg("Expired points sweep completed")
}
