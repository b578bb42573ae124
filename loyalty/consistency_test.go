package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sejenak-backend/models"
)

func TestCheckLedger(t *testing.T) {
	entries := []models.PointsHistoryEntry{
		{Type: models.EntryEarned, Delta: 120},
		{Type: models.EntryRedeemed, Delta: -50},
		{Type: models.EntryAdjustment, Delta: -20},
	}

	sum, consistent := CheckLedger(models.Member{CurrentPoints: 50}, entries)
	assert.Equal(t, 50, sum)
	assert.True(t, consistent)

	sum, consistent = CheckLedger(models.Member{CurrentPoints: 70}, entries)
	assert.Equal(t, 50, sum)
	assert.False(t, consistent)
}

func TestCheckLedger_EmptyHistory(t *testing.T) {
	sum, consistent := CheckLedger(models.Member{CurrentPoints: 0}, nil)
	assert.Equal(t, 0, sum)
	assert.True(t, consistent)
}
