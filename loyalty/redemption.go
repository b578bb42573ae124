package loyalty

import (
	"sejenak-backend/models"
)

// RejectReason identifies why a redemption was refused. Rejections are part
// of the normal result, not errors: they are routine business outcomes.
type RejectReason string

const (
	ReasonRewardExpired       RejectReason = "RewardExpired"
	ReasonQuotaExhausted      RejectReason = "QuotaExhausted"
	ReasonBelowMinimumPoint   RejectReason = "BelowMinimumPoint"
	ReasonInsufficientBalance RejectReason = "InsufficientBalance"
)

// RedemptionDecision is the outcome of gating one reward claim.
type RedemptionDecision struct {
	Allowed    bool
	Reason     RejectReason // empty when allowed
	NewBalance int
	NewUsage   int
}

// ValidateRedemption gates a reward claim against the member's balance
// (points or stamps, matching the reward's method). Checks run in a fixed
// order and the first failure wins: expired status, exhausted quota, minimum
// point gate, then balance. On acceptance the decision carries the
// post-redemption balance and usage count; applying them (one redemption
// record plus one negative history entry) is the storage layer's job and
// must be a single atomic unit.
func ValidateRedemption(balance int, reward models.Reward) RedemptionDecision {
	if reward.Status != models.RewardActive {
		return RedemptionDecision{Reason: ReasonRewardExpired}
	}
	if reward.Quota != nil && reward.UsageCount >= *reward.Quota {
		return RedemptionDecision{Reason: ReasonQuotaExhausted}
	}
	if balance < reward.MinPoint {
		return RedemptionDecision{Reason: ReasonBelowMinimumPoint}
	}
	if balance < reward.Cost {
		return RedemptionDecision{Reason: ReasonInsufficientBalance}
	}
	return RedemptionDecision{
		Allowed:    true,
		NewBalance: balance - reward.Cost,
		NewUsage:   reward.UsageCount + 1,
	}
}
