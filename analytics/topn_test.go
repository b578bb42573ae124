package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRecords(counts map[string]int) []Record {
	// deterministic encounter order
	order := []string{"Massage", "Facial", "Body Scrub", "Nails", "Hair"}
	var records []Record
	for _, cat := range order {
		for i := 0; i < counts[cat]; i++ {
			records = append(records, Record{Category: cat, Amount: 10})
		}
	}
	return records
}

func TestTopCategories_LimitAndOrder(t *testing.T) {
	records := categoryRecords(map[string]int{
		"Massage":    5,
		"Facial":     3,
		"Body Scrub": 7,
		"Nails":      1,
	})

	top := TopCategories(records)

	require.Len(t, top, 3)
	assert.Equal(t, "Body Scrub", top[0].Key)
	assert.Equal(t, 7, top[0].Count)
	assert.Equal(t, "Massage", top[1].Key)
	assert.Equal(t, "Facial", top[2].Key)
}

func TestTopCategories_TiesKeepEncounterOrder(t *testing.T) {
	records := categoryRecords(map[string]int{
		"Massage": 2,
		"Facial":  2,
		"Nails":   2,
	})

	top := TopCategories(records)

	require.Len(t, top, 3)
	assert.Equal(t, []string{"Massage", "Facial", "Nails"},
		[]string{top[0].Key, top[1].Key, top[2].Key})
}

func TestTopTreatments_GroupsByIDTruncatesLabel(t *testing.T) {
	records := []Record{
		{TreatmentID: "t1", TreatmentName: "Traditional Balinese Massage", Amount: 100},
		{TreatmentID: "t1", TreatmentName: "Traditional Balinese Massage", Amount: 100},
		{TreatmentID: "t2", TreatmentName: "Quick Facial", Amount: 100},
	}

	top := TopTreatments(records)

	require.Len(t, top, 2)
	assert.Equal(t, "t1", top[0].Key)
	assert.Equal(t, "Traditional Bal…", top[0].Label, "labels cap at 15 characters plus ellipsis")
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, "Quick Facial", top[1].Label, "short names pass through untouched")
}

func TestTopCustomers_RanksBySpendNotCount(t *testing.T) {
	records := []Record{
		{CustomerID: "c1", CustomerName: "Ayu", Amount: 50},
		{CustomerID: "c1", CustomerName: "Ayu", Amount: 50},
		{CustomerID: "c1", CustomerName: "Ayu", Amount: 50},
		{CustomerID: "c2", CustomerName: "Dewi", Amount: 500},
	}

	top := TopCustomers(records)

	require.Len(t, top, 2)
	assert.Equal(t, "c2", top[0].Key, "one big spender outranks many small visits")
	assert.Equal(t, float64(500), top[0].Sum)
	assert.Equal(t, 3, top[1].Count)
}

func TestTopCustomers_LimitIsFive(t *testing.T) {
	var records []Record
	for i := 0; i < 6; i++ {
		id := string(rune('a' + i))
		records = append(records, Record{CustomerID: id, CustomerName: id, Amount: float64(100 - i)})
	}

	top := TopCustomers(records)

	require.Len(t, top, 5)
	assert.Equal(t, "a", top[0].Key)
	assert.NotContains(t, []string{top[0].Key, top[1].Key, top[2].Key, top[3].Key, top[4].Key}, "f")
}

func TestRankBy_SkipsEmptyKeys(t *testing.T) {
	records := []Record{
		{TherapistID: "", TherapistName: "walk-in", Amount: 100},
		{TherapistID: "th1", TherapistName: "Sari", Amount: 100},
	}

	top := TopTherapists(records)

	require.Len(t, top, 1)
	assert.Equal(t, "th1", top[0].Key)
}
