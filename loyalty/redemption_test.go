package loyalty

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"sejenak-backend/models"
)

func activeReward(cost, minPoint int) models.Reward {
	return models.Reward{
		ID:       uuid.New(),
		Name:     "Free Back Massage",
		Method:   models.RedeemByPoints,
		Cost:     cost,
		MinPoint: minPoint,
		Status:   models.RewardActive,
	}
}

func intPtr(v int) *int { return &v }

func TestValidateRedemption_Accepted(t *testing.T) {
	reward := activeReward(100, 50)
	reward.Quota = intPtr(5)
	reward.UsageCount = 3

	d := ValidateRedemption(250, reward)

	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
	assert.Equal(t, 150, d.NewBalance)
	assert.Equal(t, 4, d.NewUsage)
}

func TestValidateRedemption_RejectionOrder(t *testing.T) {
	// A reward failing every check at once must be rejected for the
	// first reason in the fixed order, not an arbitrary one.
	worst := activeReward(500, 400)
	worst.Status = models.RewardExpired
	worst.Quota = intPtr(2)
	worst.UsageCount = 2

	cases := []struct {
		name    string
		balance int
		mutate  func(*models.Reward)
		want    RejectReason
	}{
		{
			name:    "expired wins over everything",
			balance: 10,
			mutate:  func(r *models.Reward) {},
			want:    ReasonRewardExpired,
		},
		{
			name:    "quota wins once active",
			balance: 10,
			mutate:  func(r *models.Reward) { r.Status = models.RewardActive },
			want:    ReasonQuotaExhausted,
		},
		{
			name:    "minimum point wins once quota has room",
			balance: 10,
			mutate: func(r *models.Reward) {
				r.Status = models.RewardActive
				r.UsageCount = 1
			},
			want: ReasonBelowMinimumPoint,
		},
		{
			name:    "insufficient balance is the last gate",
			balance: 450,
			mutate: func(r *models.Reward) {
				r.Status = models.RewardActive
				r.UsageCount = 1
			},
			want: ReasonInsufficientBalance,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reward := worst
			tc.mutate(&reward)
			d := ValidateRedemption(tc.balance, reward)
			assert.False(t, d.Allowed)
			assert.Equal(t, tc.want, d.Reason)
		})
	}
}

func TestValidateRedemption_QuotaExactlyReached(t *testing.T) {
	reward := activeReward(50, 0)
	reward.Quota = intPtr(2)
	reward.UsageCount = 2

	d := ValidateRedemption(1000, reward)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonQuotaExhausted, d.Reason)
}

func TestValidateRedemption_NilQuotaIsUnlimited(t *testing.T) {
	reward := activeReward(50, 0)
	reward.UsageCount = 99999

	d := ValidateRedemption(100, reward)
	assert.True(t, d.Allowed)
}

func TestValidateRedemption_MinPointGate(t *testing.T) {
	// Cost 50 but members below 200 points may not redeem at all.
	reward := activeReward(50, 200)

	d := ValidateRedemption(150, reward)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonBelowMinimumPoint, d.Reason)

	d = ValidateRedemption(200, reward)
	assert.True(t, d.Allowed)
	assert.Equal(t, 150, d.NewBalance)
}

func TestValidateRedemption_ExactBalance(t *testing.T) {
	reward := activeReward(100, 0)

	d := ValidateRedemption(100, reward)
	assert.True(t, d.Allowed)
	assert.Equal(t, 0, d.NewBalance)
}
