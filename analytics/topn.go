package analytics

import (
	"sort"
)

// Default leaderboard sizes.
const (
	topGroupLimit    = 3
	topCustomerLimit = 5
)

// displayNameLimit caps labels for chart legends. Grouping always happens on
// the full name; only the label is shortened.
const displayNameLimit = 15

// RankEntry is one row of a leaderboard.
type RankEntry struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// rankBy groups records by key, sorts descending by count or sum, and keeps
// the top n. Ties keep encounter order (stable sort).
func rankBy(records []Record, key func(Record) (string, string), n int, bySum bool) []RankEntry {
	index := make(map[string]int)
	entries := []RankEntry{}
	for _, r := range records {
		k, label := key(r)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(entries)
			index[k] = i
			entries = append(entries, RankEntry{Key: k, Label: truncateName(label)})
		}
		entries[i].Count++
		entries[i].Sum += r.Amount
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if bySum {
			return entries[i].Sum > entries[j].Sum
		}
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopCategories ranks treatment categories by booking count.
func TopCategories(records []Record) []RankEntry {
	return rankBy(records, func(r Record) (string, string) {
		return r.Category, r.Category
	}, topGroupLimit, false)
}

// TopTreatments ranks treatments by booking count.
func TopTreatments(records []Record) []RankEntry {
	return rankBy(records, func(r Record) (string, string) {
		return r.TreatmentID, r.TreatmentName
	}, topGroupLimit, false)
}

// TopTherapists ranks therapists by booking count.
func TopTherapists(records []Record) []RankEntry {
	return rankBy(records, func(r Record) (string, string) {
		return r.TherapistID, r.TherapistName
	}, topGroupLimit, false)
}

// TopCustomers ranks customers by total spend.
func TopCustomers(records []Record) []RankEntry {
	return rankBy(records, func(r Record) (string, string) {
		return r.CustomerID, r.CustomerName
	}, topCustomerLimit, true)
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= displayNameLimit {
		return name
	}
	return string(runes[:displayNameLimit]) + "…"
}
