package loyalty

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sejenak-backend/models"
)

func tier(name string, rank int, upgrade, maintain float64) models.TierDefinition {
	return models.TierDefinition{
		ID:                  uuid.New(),
		Name:                name,
		Rank:                rank,
		UpgradeRequirement:  upgrade,
		MaintainRequirement: maintain,
	}
}

func threeTiers() []models.TierDefinition {
	return []models.TierDefinition{
		tier("Bronze", 1, 0, 0),
		tier("Silver", 2, 5000000, 0),
		tier("Gold", 3, 15000000, 10000000),
	}
}

func TestClassifyTier_Walk(t *testing.T) {
	tiers := threeTiers()

	cases := []struct {
		name  string
		spend float64
		want  string
	}{
		{"zero spend lands on lowest", 0, "Bronze"},
		{"below every threshold", 4999999, "Bronze"},
		{"silver upgrade boundary", 5000000, "Silver"},
		{"gold maintain boundary", 10000000, "Gold"},
		{"well above top", 50000000, "Gold"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyTier(tc.spend, tiers)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Name)
		})
	}
}

func TestClassifyTier_TopTierUsesMaintainThreshold(t *testing.T) {
	tiers := threeTiers()

	// 10M is below Gold's upgrade requirement (15M) but meets its maintain
	// requirement (10M), so an existing Gold member's spend keeps them there.
	got, err := ClassifyTier(12000000, tiers)
	require.NoError(t, err)
	assert.Equal(t, "Gold", got.Name)
}

func TestClassifyTier_TopTierFallsBackToUpgrade(t *testing.T) {
	tiers := []models.TierDefinition{
		tier("Bronze", 1, 0, 0),
		tier("Gold", 2, 15000000, 0), // no maintain threshold configured
	}

	got, err := ClassifyTier(14000000, tiers)
	require.NoError(t, err)
	assert.Equal(t, "Bronze", got.Name)

	got, err = ClassifyTier(15000000, tiers)
	require.NoError(t, err)
	assert.Equal(t, "Gold", got.Name)
}

func TestClassifyTier_Monotonic(t *testing.T) {
	tiers := threeTiers()

	prevRank := 0
	for _, spend := range []float64{0, 1000000, 5000000, 9000000, 10000000, 20000000} {
		got, err := ClassifyTier(spend, tiers)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.Rank, prevRank, "more spend never classifies lower")
		prevRank = got.Rank
	}
}

func TestClassifyTier_UnsortedInput(t *testing.T) {
	tiers := threeTiers()
	// order in storage is not guaranteed
	tiers[0], tiers[2] = tiers[2], tiers[0]

	got, err := ClassifyTier(6000000, tiers)
	require.NoError(t, err)
	assert.Equal(t, "Silver", got.Name)
}

func TestClassifyTier_NoTiers(t *testing.T) {
	_, err := ClassifyTier(1000, nil)
	assert.ErrorIs(t, err, ErrNoTiers)
}
