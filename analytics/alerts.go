package analytics

// Alert levels for customers with too many cancelled or no-show bookings.
// Customers below the at-risk thresholds are not surfaced at all.
const (
	AlertAtRisk  = "at_risk"
	AlertFlagged = "flagged"
)

const (
	atRiskCancelled  = 3
	atRiskNoShow     = 2
	flaggedCancelled = 8
	flaggedNoShow    = 3
)

// CustomerAlert flags one customer whose cancellation behavior crossed a
// threshold within the range.
type CustomerAlert struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Cancelled    int    `json:"cancelled"`
	NoShows      int    `json:"noShows"`
	Level        string `json:"level"`
}

// CustomerAlerts scans the record set and emits at-risk and flagged
// customers in encounter order. Statuses other than cancelled and no_show
// are ignored.
func CustomerAlerts(records []Record) []CustomerAlert {
	index := make(map[string]int)
	alerts := []CustomerAlert{}
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		if r.Status != "cancelled" && r.Status != "no_show" {
			continue
		}
		i, ok := index[r.CustomerID]
		if !ok {
			i = len(alerts)
			index[r.CustomerID] = i
			alerts = append(alerts, CustomerAlert{CustomerID: r.CustomerID, CustomerName: r.CustomerName})
		}
		if r.Status == "cancelled" {
			alerts[i].Cancelled++
		} else {
			alerts[i].NoShows++
		}
	}

	flagged := alerts[:0]
	for _, a := range alerts {
		switch {
		case a.Cancelled >= flaggedCancelled || a.NoShows >= flaggedNoShow:
			a.Level = AlertFlagged
		case a.Cancelled >= atRiskCancelled || a.NoShows >= atRiskNoShow:
			a.Level = AlertAtRisk
		default:
			continue
		}
		flagged = append(flagged, a)
	}
	return flagged
}
