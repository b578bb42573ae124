package analytics

// RetentionSplit partitions customers by transaction count in range.
type RetentionSplit struct {
	New       int `json:"new"`       // exactly one transaction
	Returning int `json:"returning"` // two or more
}

// Retention classifies every distinct customer in the record set as either
// new or returning. The two counts always sum to the number of distinct
// customers with at least one transaction.
func Retention(records []Record) RetentionSplit {
	visits := make(map[string]int)
	for _, r := range records {
		if r.CustomerID == "" {
			continue
		}
		visits[r.CustomerID]++
	}

	split := RetentionSplit{}
	for _, n := range visits {
		if n == 1 {
			split.New++
		} else {
			split.Returning++
		}
	}
	return split
}
