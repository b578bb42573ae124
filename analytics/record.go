// Package analytics turns flat collections of timestamped records into
// chart-ready series and leaderboards. Every function here is a pure
// reducer: no I/O, no stored state, and a well-defined zero-shaped output
// for empty input so the chart layer never special-cases emptiness.
package analytics

import "time"

// Record is the flattened view of a booking-like row that the reducers
// consume. Only Date is mandatory; the other fields feed specific outputs.
type Record struct {
	Date time.Time

	Amount   float64
	Category string

	TreatmentID   string
	TreatmentName string
	TherapistID   string
	TherapistName string
	CustomerID    string
	CustomerName  string

	Status string
}
