package loyalty

import (
	"sort"

	"sejenak-backend/models"
)

// ClassifyTier maps a member's rolling spend figure to a tier definition.
// Tiers are walked from highest rank to lowest; the top tier is gated by its
// maintain requirement, every other tier by its upgrade requirement. A spend
// figure below every threshold lands on the lowest tier.
//
// The function is pure and idempotent; recalculation is triggered externally
// (after each completed transaction and by the nightly batch).
func ClassifyTier(spend float64, tiers []models.TierDefinition) (models.TierDefinition, error) {
	if len(tiers) == 0 {
		return models.TierDefinition{}, ErrNoTiers
	}

	ordered := make([]models.TierDefinition, len(tiers))
	copy(ordered, tiers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Rank > ordered[j].Rank
	})

	for i, tier := range ordered {
		threshold := tier.UpgradeRequirement
		if i == 0 && tier.MaintainRequirement > 0 {
			// highest tier is gated by its maintain threshold
			threshold = tier.MaintainRequirement
		}
		if spend >= threshold && threshold > 0 {
			return tier, nil
		}
	}

	// lowest tier is the default
	return ordered[len(ordered)-1], nil
}
