package loyalty

import (
	"sejenak-backend/models"
)

// LedgerSum adds up the signed deltas of a member's history entries.
func LedgerSum(entries []models.PointsHistoryEntry) int {
	sum := 0
	for _, e := range entries {
		sum += e.Delta
	}
	return sum
}

// CheckLedger verifies that a member's stored balance matches the sum of
// their history entries since the last reset. A mismatch is not a hard
// error; callers log it as an inconsistency warning.
func CheckLedger(member models.Member, entries []models.PointsHistoryEntry) (sum int, consistent bool) {
	sum = LedgerSum(entries)
	return sum, sum == member.CurrentPoints
}
