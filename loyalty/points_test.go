package loyalty

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sejenak-backend/models"
)

func generalRule(spend float64, points int) models.PointRule {
	return models.PointRule{
		ID:          uuid.New(),
		Name:        "general",
		Scope:       models.RuleScopeGeneral,
		SpendAmount: spend,
		PointEarned: points,
		IsActive:    true,
	}
}

func TestEvaluatePoints_ThresholdFlooring(t *testing.T) {
	rules := []models.PointRule{generalRule(100000, 10)}

	award, err := EvaluatePoints(SpendEvent{Amount: 250000, Timestamp: time.Now()}, rules)
	require.NoError(t, err)
	assert.Equal(t, 20, award.Total(), "floor(250000/100000)=2 batches of 10")

	award, err = EvaluatePoints(SpendEvent{Amount: 99999, Timestamp: time.Now()}, rules)
	require.NoError(t, err)
	assert.Equal(t, 0, award.Total(), "below threshold earns nothing, not a fraction")
	assert.Empty(t, award.Batches)
}

func TestEvaluatePoints_Additivity(t *testing.T) {
	ruleA := generalRule(50000, 5)
	ruleB := generalRule(100000, 8)
	event := SpendEvent{Amount: 200000, Timestamp: time.Now()}

	alone1, err := EvaluatePoints(event, []models.PointRule{ruleA})
	require.NoError(t, err)
	alone2, err := EvaluatePoints(event, []models.PointRule{ruleB})
	require.NoError(t, err)
	both, err := EvaluatePoints(event, []models.PointRule{ruleA, ruleB})
	require.NoError(t, err)

	assert.Equal(t, alone1.Total()+alone2.Total(), both.Total())
}

func TestEvaluatePoints_WelcomeBonus(t *testing.T) {
	rule := generalRule(50000, 5)
	rule.WelcomePoint = 20

	award, err := EvaluatePoints(SpendEvent{
		Amount:           120000,
		Timestamp:        time.Now(),
		FirstTransaction: true,
	}, []models.PointRule{rule})
	require.NoError(t, err)

	assert.Equal(t, 20, award.WelcomeBonus)
	assert.Equal(t, 30, award.Total(), "floor(120000/50000)*5 + 20")
}

func TestEvaluatePoints_WelcomeBonusMaxAcrossRules(t *testing.T) {
	low := generalRule(50000, 5)
	low.WelcomePoint = 10
	high := generalRule(999999999, 1) // never matches the spend
	high.WelcomePoint = 25

	award, err := EvaluatePoints(SpendEvent{
		Amount:           60000,
		Timestamp:        time.Now(),
		FirstTransaction: true,
	}, []models.PointRule{low, high})
	require.NoError(t, err)

	assert.Equal(t, 25, award.WelcomeBonus, "largest welcome bonus wins, even from a non-matching rule")
}

func TestEvaluatePoints_NoWelcomeOnRepeatVisit(t *testing.T) {
	rule := generalRule(50000, 5)
	rule.WelcomePoint = 20

	award, err := EvaluatePoints(SpendEvent{Amount: 60000, Timestamp: time.Now()}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 0, award.WelcomeBonus)
}

func TestEvaluatePoints_CategoryScope(t *testing.T) {
	rule := generalRule(50000, 5)
	rule.Scope = models.RuleScopeCategory
	rule.Category = "Massage"

	matching, err := EvaluatePoints(SpendEvent{
		Amount: 100000, Timestamp: time.Now(), Category: "Massage",
	}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 10, matching.Total())

	other, err := EvaluatePoints(SpendEvent{
		Amount: 100000, Timestamp: time.Now(), Category: "Facial",
	}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 0, other.Total())
}

func TestEvaluatePoints_TreatmentScope(t *testing.T) {
	treatmentID := uuid.New().String()
	rule := generalRule(50000, 5)
	rule.Scope = models.RuleScopeTreatment
	rule.TreatmentIDs = models.StringList{treatmentID, uuid.New().String()}

	matching, err := EvaluatePoints(SpendEvent{
		Amount: 50000, Timestamp: time.Now(), TreatmentID: treatmentID,
	}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 5, matching.Total())

	other, err := EvaluatePoints(SpendEvent{
		Amount: 50000, Timestamp: time.Now(), TreatmentID: uuid.New().String(),
	}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 0, other.Total())
}

func TestEvaluatePoints_DayScope(t *testing.T) {
	sunday := time.Date(2024, 3, 3, 14, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)

	rule := generalRule(50000, 5)
	rule.Scope = models.RuleScopeDay
	rule.Weekdays = models.IntList{0} // Sunday

	onDay, err := EvaluatePoints(SpendEvent{Amount: 50000, Timestamp: sunday}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 5, onDay.Total())

	offDay, err := EvaluatePoints(SpendEvent{Amount: 50000, Timestamp: monday}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 0, offDay.Total())
}

func TestEvaluatePoints_GeneralAndScopedStack(t *testing.T) {
	// No precedence between rules: a general and a category rule covering
	// the same event both apply.
	general := generalRule(50000, 5)
	scoped := generalRule(50000, 3)
	scoped.Scope = models.RuleScopeCategory
	scoped.Category = "Massage"

	award, err := EvaluatePoints(SpendEvent{
		Amount: 100000, Timestamp: time.Now(), Category: "Massage",
	}, []models.PointRule{general, scoped})
	require.NoError(t, err)
	assert.Equal(t, 16, award.Total(), "2*5 general + 2*3 category")
	assert.Len(t, award.Batches, 2)
}

func TestEvaluatePoints_InactiveRulesSkipped(t *testing.T) {
	rule := generalRule(50000, 5)
	rule.IsActive = false
	rule.WelcomePoint = 20

	award, err := EvaluatePoints(SpendEvent{
		Amount: 100000, Timestamp: time.Now(), FirstTransaction: true,
	}, []models.PointRule{rule})
	require.NoError(t, err)
	assert.Equal(t, 0, award.Total())
}

func TestEvaluatePoints_ExpiryHorizon(t *testing.T) {
	spent := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	rule := generalRule(50000, 5)
	rule.ExpiryMonths = 6

	award, err := EvaluatePoints(SpendEvent{Amount: 50000, Timestamp: spent}, []models.PointRule{rule})
	require.NoError(t, err)
	require.Len(t, award.Batches, 1)
	require.NotNil(t, award.Batches[0].ExpiresAt)
	assert.Equal(t, spent.AddDate(0, 6, 0), *award.Batches[0].ExpiresAt)
}

func TestEvaluatePoints_NoExpiryWhenZeroMonths(t *testing.T) {
	rule := generalRule(50000, 5)
	rule.ExpiryMonths = 0

	award, err := EvaluatePoints(SpendEvent{Amount: 50000, Timestamp: time.Now()}, []models.PointRule{rule})
	require.NoError(t, err)
	require.Len(t, award.Batches, 1)
	assert.Nil(t, award.Batches[0].ExpiresAt)
}

func TestEvaluatePoints_InvalidInput(t *testing.T) {
	_, err := EvaluatePoints(SpendEvent{Amount: -1, Timestamp: time.Now()}, nil)
	assert.ErrorIs(t, err, ErrInvalidSpend)

	_, err = EvaluatePoints(SpendEvent{Amount: 100}, nil)
	assert.ErrorIs(t, err, ErrInvalidSpend, "zero timestamp is rejected")
}
