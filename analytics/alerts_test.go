package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusRecords(customerID string, status string, n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = Record{CustomerID: customerID, CustomerName: customerID, Status: status}
	}
	return records
}

func TestCustomerAlerts_Thresholds(t *testing.T) {
	cases := []struct {
		name      string
		cancelled int
		noShows   int
		want      string // empty means not surfaced
	}{
		{"clean history", 0, 0, ""},
		{"two cancellations stay quiet", 2, 0, ""},
		{"one no-show stays quiet", 0, 1, ""},
		{"three cancellations at risk", 3, 0, AlertAtRisk},
		{"two no-shows at risk", 0, 2, AlertAtRisk},
		{"seven cancellations still at risk", 7, 0, AlertAtRisk},
		{"eight cancellations flagged", 8, 0, AlertFlagged},
		{"nine cancellations flagged", 9, 0, AlertFlagged},
		{"three no-shows flagged", 0, 3, AlertFlagged},
		{"flagged beats at risk", 4, 3, AlertFlagged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records := append(
				statusRecords("c1", "cancelled", tc.cancelled),
				statusRecords("c1", "no_show", tc.noShows)...,
			)

			alerts := CustomerAlerts(records)

			if tc.want == "" {
				assert.Empty(t, alerts)
				return
			}
			require.Len(t, alerts, 1)
			assert.Equal(t, tc.want, alerts[0].Level)
			assert.Equal(t, tc.cancelled, alerts[0].Cancelled)
			assert.Equal(t, tc.noShows, alerts[0].NoShows)
		})
	}
}

func TestCustomerAlerts_IgnoresOtherStatuses(t *testing.T) {
	records := append(
		statusRecords("c1", "completed", 20),
		statusRecords("c1", "cancelled", 2)...,
	)

	assert.Empty(t, CustomerAlerts(records), "completed visits never count against a customer")
}

func TestCustomerAlerts_MultipleCustomersEncounterOrder(t *testing.T) {
	var records []Record
	records = append(records, statusRecords("c1", "cancelled", 3)...)
	records = append(records, statusRecords("c2", "no_show", 1)...)
	records = append(records, statusRecords("c3", "no_show", 4)...)

	alerts := CustomerAlerts(records)

	require.Len(t, alerts, 2, "customers below threshold are omitted entirely")
	assert.Equal(t, "c1", alerts[0].CustomerID)
	assert.Equal(t, AlertAtRisk, alerts[0].Level)
	assert.Equal(t, "c3", alerts[1].CustomerID)
	assert.Equal(t, AlertFlagged, alerts[1].Level)
}
