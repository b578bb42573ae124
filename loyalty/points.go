package loyalty

import (
	"time"

	"github.com/google/uuid"

	"sejenak-backend/models"
)

// SpendEvent is one completed spend by a member, as seen by the point
// evaluator. FirstTransaction marks the member's first-ever qualifying spend.
type SpendEvent struct {
	Amount           float64
	Timestamp        time.Time
	Category         string
	TreatmentID      string
	FirstTransaction bool
}

// AwardBatch is the contribution of a single matching rule. Points from a
// batch lapse at ExpiresAt (nil when the rule has no expiry).
type AwardBatch struct {
	RuleID    uuid.UUID
	RuleName  string
	Points    int
	ExpiresAt *time.Time
}

// PointAward is the full outcome of evaluating one spend event.
type PointAward struct {
	Batches      []AwardBatch
	WelcomeBonus int
}

// Total returns rule points plus the welcome bonus.
func (a PointAward) Total() int {
	total := a.WelcomeBonus
	for _, b := range a.Batches {
		total += b.Points
	}
	return total
}

// EvaluatePoints computes the points earned by a single spend event against
// the given rule set. Inactive rules are skipped. General rules always apply;
// scoped rules apply only when their condition matches the event. Every
// applying rule contributes floor(amount/spendAmount)*pointEarned and the
// contributions stack (rules are additive, with no precedence between a
// general rule and a scoped rule covering the same event).
//
// On a first transaction the largest welcome bonus defined across the active
// rules is added once. Expiry bookkeeping is the caller's responsibility;
// each batch only carries its horizon.
func EvaluatePoints(event SpendEvent, rules []models.PointRule) (PointAward, error) {
	if event.Amount < 0 || event.Timestamp.IsZero() {
		return PointAward{}, ErrInvalidSpend
	}

	award := PointAward{}
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}
		if event.FirstTransaction && rule.WelcomePoint > award.WelcomeBonus {
			award.WelcomeBonus = rule.WelcomePoint
		}
		if !ruleApplies(rule, event) {
			continue
		}
		if rule.SpendAmount <= 0 {
			continue
		}
		points := int(event.Amount/rule.SpendAmount) * rule.PointEarned
		if points <= 0 {
			continue
		}
		batch := AwardBatch{
			RuleID:   rule.ID,
			RuleName: rule.Name,
			Points:   points,
		}
		if rule.ExpiryMonths > 0 {
			expires := event.Timestamp.AddDate(0, rule.ExpiryMonths, 0)
			batch.ExpiresAt = &expires
		}
		award.Batches = append(award.Batches, batch)
	}

	return award, nil
}

func ruleApplies(rule models.PointRule, event SpendEvent) bool {
	switch rule.Scope {
	case models.RuleScopeCategory:
		return rule.Category != "" && rule.Category == event.Category
	case models.RuleScopeTreatment:
		for _, id := range rule.TreatmentIDs {
			if id == event.TreatmentID {
				return true
			}
		}
		return false
	case models.RuleScopeDay:
		weekday := int(event.Timestamp.Weekday())
		for _, d := range rule.Weekdays {
			if d == weekday {
				return true
			}
		}
		return false
	default:
		// general rules always apply
		return true
	}
}
